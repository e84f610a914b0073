package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, frontDeskMiddleware gin.HandlerFunc) {
	bookings := g.Group("/bookings")
	bookings.Use(authMiddleware)
	{
		bookings.GET("/:id/payments", h.ListByBooking)
		bookings.GET("/:id/balance", h.Balance)
		bookings.POST("/:id/payments", frontDeskMiddleware, h.Record)
	}

	payments := g.Group("/payments")
	payments.Use(authMiddleware)
	{
		payments.POST("/:paymentID/refund", frontDeskMiddleware, h.Refund)
	}
}
