package router

import (
	"github.com/gin-gonic/gin"

	"taskhive.app/api/internal/http/handler"
)

func BoardRouter(rg *gin.RouterGroup, h *handler.BoardHandler) {
	rg.POST("", h.Create)
	rg.GET("/:board_id", h.Get)
	rg.POST("/:board_id/lists", h.AddList)
	rg.POST("/:board_id/labels", h.AddLabel)
}
