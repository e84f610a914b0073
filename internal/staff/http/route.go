package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all staff-related routes (including Auth).
func RegisterRoutes(g *gin.RouterGroup, h *StaffHandler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// Public Routes
	authGroup := g.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	// Authenticated Routes
	g.GET("/me", authMiddleware, h.Me)

	// Admin Routes
	staffGroup := g.Group("/staff")
	staffGroup.Use(authMiddleware, adminMiddleware)
	{
		staffGroup.GET("", h.List)
		staffGroup.GET("/:id", h.Get)
		staffGroup.PATCH("/:id", h.Update)
	}
}
