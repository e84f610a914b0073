package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ferndale-labs/hotel-management-backend/internal/api"
	"github.com/ferndale-labs/hotel-management-backend/internal/auth"
	"github.com/ferndale-labs/hotel-management-backend/internal/booking"
	"github.com/ferndale-labs/hotel-management-backend/internal/feedback"
	"github.com/ferndale-labs/hotel-management-backend/internal/guest"
	"github.com/ferndale-labs/hotel-management-backend/internal/payment"
	"github.com/ferndale-labs/hotel-management-backend/internal/photo"
	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/storage"
	"github.com/ferndale-labs/hotel-management-backend/internal/room"
	"github.com/ferndale-labs/hotel-management-backend/internal/staff"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	StoragePath  string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	Services   api.Services
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init storage failed: %w", err)
	}

	// Staff Module
	staffRepo := staff.NewPgxRepository(cfg.DBPool)
	staffService := staff.NewService(staffRepo, passwordHasher)

	// Guest Module
	guestRepo := guest.NewPgxRepository(cfg.DBPool)
	guestService := guest.NewService(guestRepo)

	// Room Module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, roomService, guestService)

	// Payment Module
	paymentRepo := payment.NewPgxRepository(cfg.DBPool)
	paymentService := payment.NewService(paymentRepo, bookingService)

	// Feedback Module
	feedbackRepo := feedback.NewPgxRepository(cfg.DBPool)
	feedbackService := feedback.NewService(feedbackRepo, guestService, bookingService)

	// Photo Module
	photoRepo := photo.NewPgxRepository(cfg.DBPool)
	photoService := photo.NewService(photoRepo, roomService, store)

	services := api.Services{
		Staff:    staffService,
		Guest:    guestService,
		Room:     roomService,
		Booking:  bookingService,
		Payment:  paymentService,
		Feedback: feedbackService,
		Photo:    photoService,
	}

	router := api.NewRouter(services, jwtManager, allowedOrigins(cfg))

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		Services:   services,
	}, nil
}

// allowedOrigins resolves the CORS origin list for the environment.
func allowedOrigins(cfg Config) []string {
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		origins := strings.Split(cfg.ProdOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		return origins
	}
	return []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}
}
