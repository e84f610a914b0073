package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ferndale-labs/hotel-management-backend/internal/auth"
	"github.com/ferndale-labs/hotel-management-backend/internal/booking"
	bookingHttp "github.com/ferndale-labs/hotel-management-backend/internal/booking/http"
	"github.com/ferndale-labs/hotel-management-backend/internal/feedback"
	feedbackHttp "github.com/ferndale-labs/hotel-management-backend/internal/feedback/http"
	"github.com/ferndale-labs/hotel-management-backend/internal/guest"
	guestHttp "github.com/ferndale-labs/hotel-management-backend/internal/guest/http"
	"github.com/ferndale-labs/hotel-management-backend/internal/payment"
	paymentHttp "github.com/ferndale-labs/hotel-management-backend/internal/payment/http"
	"github.com/ferndale-labs/hotel-management-backend/internal/photo"
	photoHttp "github.com/ferndale-labs/hotel-management-backend/internal/photo/http"
	"github.com/ferndale-labs/hotel-management-backend/internal/room"
	roomHttp "github.com/ferndale-labs/hotel-management-backend/internal/room/http"
	"github.com/ferndale-labs/hotel-management-backend/internal/staff"
	staffHttp "github.com/ferndale-labs/hotel-management-backend/internal/staff/http"
)

// Services groups every domain service the router depends on.
type Services struct {
	Staff    staff.Service
	Guest    guest.Service
	Room     room.Service
	Booking  booking.Service
	Payment  payment.Service
	Feedback feedback.Service
	Photo    photo.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(services Services, jwtManager *auth.JWTManager, allowOrigins []string) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowOrigins = allowOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(jwtManager)
	// Role middleware narrows by staff role after authentication.
	adminMiddleware := RequireAdmin(services.Staff)
	frontDeskMiddleware := RequireFrontDesk(services.Staff)
	housekeepingMiddleware := RequireHousekeeping(services.Staff)

	staffHandler := staffHttp.NewHandler(services.Staff, jwtManager)
	guestHandler := guestHttp.NewHandler(services.Guest)
	roomHandler := roomHttp.NewHandler(services.Room, services.Booking)
	bookingHandler := bookingHttp.NewHandler(services.Booking)
	paymentHandler := paymentHttp.NewHandler(services.Payment)
	feedbackHandler := feedbackHttp.NewHandler(services.Feedback)
	photoHandler := photoHttp.NewHandler(services.Photo)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		staffHttp.RegisterRoutes(v1, staffHandler, authMiddleware, adminMiddleware)
		guestHttp.RegisterRoutes(v1, guestHandler, authMiddleware, frontDeskMiddleware)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, frontDeskMiddleware, housekeepingMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, frontDeskMiddleware)
		paymentHttp.RegisterRoutes(v1, paymentHandler, authMiddleware, frontDeskMiddleware)
		feedbackHttp.RegisterRoutes(v1, feedbackHandler, authMiddleware)
		photoHttp.RegisterRoutes(v1, photoHandler, authMiddleware, adminMiddleware)
	}

	return r
}
