package router

import (
	"github.com/gin-gonic/gin"

	"taskhive.app/api/internal/http/handler"
)

// Registration is the one unauthenticated write in the API.
func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler) {
	rg.POST("", h.Register)
}
