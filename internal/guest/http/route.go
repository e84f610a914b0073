package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, frontDeskMiddleware gin.HandlerFunc) {
	group := g.Group("/guests")

	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)

		// Front desk and above
		group.POST("", frontDeskMiddleware, h.Create)
		group.PATCH("/:id", frontDeskMiddleware, h.Update)
		group.POST("/:id/deactivate", frontDeskMiddleware, h.Deactivate)
	}
}
