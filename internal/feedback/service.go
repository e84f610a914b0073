package feedback

import (
	"context"
	"errors"
	"strings"

	"github.com/ferndale-labs/hotel-management-backend/internal/booking"
	"github.com/ferndale-labs/hotel-management-backend/internal/guest"
	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/apperror"
)

type CreateRequest struct {
	GuestID   string
	BookingID *string
	Rating    int
	Comments  *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Feedback, error)
	GetByID(ctx context.Context, id string) (*Feedback, error)
	List(ctx context.Context, filter Filter) ([]*Feedback, int, error)
}

type service struct {
	repo           Repository
	guestService   guest.Service
	bookingService booking.Service
}

func NewService(repo Repository, guestService guest.Service, bookingService booking.Service) Service {
	return &service{
		repo:           repo,
		guestService:   guestService,
		bookingService: bookingService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperror.Validation("rating", "rating must be between 1 and 5")
	}
	if req.Comments != nil {
		trimmed := strings.TrimSpace(*req.Comments)
		if len(trimmed) > MaxCommentLength {
			return nil, apperror.Validation("comments", "comments must be at most 2000 characters")
		}
		if trimmed == "" {
			req.Comments = nil
		} else {
			req.Comments = &trimmed
		}
	}

	g, err := s.guestService.GetByID(ctx, req.GuestID)
	if err != nil {
		if errors.Is(err, guest.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}

	if req.BookingID != nil {
		b, err := s.bookingService.GetByID(ctx, *req.BookingID)
		if err != nil {
			if errors.Is(err, booking.ErrNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, err
		}
		if b.GuestID != req.GuestID {
			return nil, apperror.Validation("booking_id", "booking does not belong to this guest")
		}
	}

	f := &Feedback{
		GuestID:   req.GuestID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comments:  req.Comments,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	f.GuestName = g.Name
	return f, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Feedback, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Feedback, int, error) {
	return s.repo.List(ctx, filter)
}
