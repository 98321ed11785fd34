package router

import (
	"github.com/gin-gonic/gin"

	"taskhive.app/api/internal/http/handler"
)

func WorkspaceRouter(rg *gin.RouterGroup, h *handler.WorkspaceHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.PATCH("/:workspace_id/name", h.Rename)
	rg.PATCH("/:workspace_id/users", h.AddSelf)
	rg.DELETE("/:workspace_id/users/:user_id", h.RemoveUser)
	rg.DELETE("/:workspace_id", h.Delete)
}
