package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, frontDeskMiddleware, housekeepingMiddleware gin.HandlerFunc) {
	group := g.Group("/rooms")

	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.GET("/:id/availability", h.CheckAvailability)

		// Front desk and above
		group.POST("", frontDeskMiddleware, h.Create)
		group.PATCH("/:id", frontDeskMiddleware, h.Update)
		group.DELETE("/:id", frontDeskMiddleware, h.Delete)

		// Housekeeping staff may update cleaning/maintenance state
		group.PATCH("/:id/housekeeping", housekeepingMiddleware, h.UpdateHousekeeping)
	}
}
