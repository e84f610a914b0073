package payment

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/ferndale-labs/hotel-management-backend/internal/booking"
	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/apperror"
)

type RecordRequest struct {
	BookingID string
	Amount    float64
	Method    string
	Status    string // optional, defaults to paid
	Reference *string
}

type Service interface {
	Record(ctx context.Context, req RecordRequest) (*Payment, error)
	GetByID(ctx context.Context, id string) (*Payment, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*Payment, error)
	Refund(ctx context.Context, id string) (*Payment, error)
	Balance(ctx context.Context, bookingID string) (*Balance, error)
}

type service struct {
	repo           Repository
	bookingService booking.Service
}

func NewService(repo Repository, bookingService booking.Service) Service {
	return &service{repo: repo, bookingService: bookingService}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *service) Record(ctx context.Context, req RecordRequest) (*Payment, error) {
	if req.Amount <= 0 {
		return nil, apperror.Validation("amount", "amount must be greater than zero")
	}

	method := Method(req.Method)
	if !ValidMethod(method) {
		return nil, ErrInvalidMethod
	}

	status := Status(req.Status)
	if req.Status == "" {
		status = StatusPaid
	}
	if status != StatusPaid && status != StatusPending {
		return nil, ErrInvalidStatus
	}

	b, err := s.bookingService.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if status == StatusPaid {
		paid, err := s.repo.SumPaid(ctx, req.BookingID)
		if err != nil {
			return nil, err
		}
		if round2(paid+req.Amount) > b.TotalAmount {
			return nil, ErrOverpayment
		}
	}

	p := &Payment{
		BookingID: req.BookingID,
		Amount:    round2(req.Amount),
		Method:    method,
		Status:    status,
		Reference: req.Reference,
	}
	if status == StatusPaid {
		now := time.Now().UTC()
		p.PaidAt = &now
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByBooking(ctx context.Context, bookingID string) ([]*Payment, error) {
	if _, err := s.bookingService.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return s.repo.ListByBooking(ctx, bookingID)
}

// Refund marks a paid payment as refunded. Pending payments cannot be
// refunded; cancel them at the source instead.
func (s *service) Refund(ctx context.Context, id string) (*Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != StatusPaid {
		return nil, ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusRefunded); err != nil {
		return nil, err
	}
	p.Status = StatusRefunded
	return p, nil
}

func (s *service) Balance(ctx context.Context, bookingID string) (*Balance, error) {
	b, err := s.bookingService.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	paid, err := s.repo.SumPaid(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return &Balance{
		BookingID:   bookingID,
		TotalAmount: b.TotalAmount,
		Paid:        round2(paid),
		Due:         round2(b.TotalAmount - paid),
	}, nil
}
