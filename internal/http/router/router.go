package router

import (
	"github.com/gin-gonic/gin"

	"taskhive.app/api/internal/http/handler"
	"taskhive.app/api/internal/http/middleware"
	"taskhive.app/api/internal/service"
)

type RouterConfig struct {
	SessionCookieName string
	SessionMaxAge     int
	IsProduction      bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authService := services.Auth()
	requireAuth := middleware.RequireAuth(authService, cfg.SessionCookieName)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionCookieName, cfg.SessionMaxAge, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler, requireAuth)

	v1 := router.Group("/api/v1")
	{
		userHandler := handler.NewUserHandler(services.Users())
		UserRouter(v1.Group("/users"), userHandler)

		workspaceHandler := handler.NewWorkspaceHandler(services.Workspaces())
		WorkspaceRouter(v1.Group("/workspaces", requireAuth), workspaceHandler)

		boardHandler := handler.NewBoardHandler(services.Boards())
		BoardRouter(v1.Group("/boards", requireAuth), boardHandler)
	}
}
