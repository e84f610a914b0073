package booking

import (
	"context"
	"errors"
	"time"

	"github.com/ferndale-labs/hotel-management-backend/internal/guest"
	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/apperror"
	"github.com/ferndale-labs/hotel-management-backend/internal/room"
)

type CreateRequest struct {
	GuestID  string
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
	Status   string // optional, defaults to confirmed
}

type UpdateRequest struct {
	RoomID   *string
	CheckIn  *time.Time
	CheckOut *time.Time
	Status   *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error)
	Cancel(ctx context.Context, id string) (*Booking, error)

	// CheckAvailability reports whether the room has a conflicting active
	// booking in [checkIn, checkOut). Read-only; used for pre-submit hints
	// and as the gate inside Create/Update.
	CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (bool, error)
}

type service struct {
	repo         Repository
	roomService  room.Service
	guestService guest.Service
}

func NewService(repo Repository, roomService room.Service, guestService guest.Service) Service {
	return &service{
		repo:         repo,
		roomService:  roomService,
		guestService: guestService,
	}
}

func (s *service) CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (bool, error) {
	checkIn = NormalizeDate(checkIn)
	checkOut = NormalizeDate(checkOut)

	// Refuse to compute a meaningless answer for an inverted range.
	if !checkOut.After(checkIn) {
		return false, ErrInvalidDateRange
	}

	if _, err := s.roomService.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return false, ErrRoomNotFound
		}
		return false, err
	}

	return s.repo.HasOverlap(ctx, roomID, checkIn, checkOut, excludeBookingID)
}

// resolveTotal computes the stay total from the room's nightly price.
func resolveTotal(rm *room.Room, checkIn, checkOut time.Time) (float64, error) {
	if rm.Price <= 0 {
		return 0, apperror.Validation("room_id", "room has no valid nightly price")
	}

	total := TotalAmount(rm.Price, Nights(checkIn, checkOut))
	if total > MaxTotalAmount {
		return 0, ErrAmountTooLarge
	}
	return total, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if req.GuestID == "" {
		return nil, apperror.Validation("guest_id", "guest is required")
	}
	if req.RoomID == "" {
		return nil, apperror.Validation("room_id", "room is required")
	}

	checkIn := NormalizeDate(req.CheckIn)
	checkOut := NormalizeDate(req.CheckOut)
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	status := Status(req.Status)
	if req.Status == "" {
		status = StatusConfirmed
	}
	// A booking is born pending or confirmed; cancelled and completed are
	// lifecycle outcomes, not starting points.
	if status != StatusConfirmed && status != StatusPending {
		return nil, ErrInvalidStatus
	}

	if _, err := s.guestService.GetByID(ctx, req.GuestID); err != nil {
		if errors.Is(err, guest.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}

	rm, err := s.roomService.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	total, err := resolveTotal(rm, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	// Best-effort gate. The storage-level exclusion constraint catches
	// the concurrent attempt that passes this read.
	hasOverlap, err := s.repo.HasOverlap(ctx, req.RoomID, checkIn, checkOut, "")
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, ErrRoomUnavailable
	}

	b := &Booking{
		GuestID:     req.GuestID,
		RoomID:      req.RoomID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Status:      status,
		TotalAmount: total,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// Re-read so callers get the joined guest/room fields without
	// re-deriving anything.
	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newRoomID := b.RoomID
	newCheckIn := b.CheckIn
	newCheckOut := b.CheckOut
	stayChanged := false

	if req.RoomID != nil && *req.RoomID != b.RoomID {
		newRoomID = *req.RoomID
		stayChanged = true
	}
	if req.CheckIn != nil {
		newCheckIn = NormalizeDate(*req.CheckIn)
		stayChanged = stayChanged || !newCheckIn.Equal(b.CheckIn)
	}
	if req.CheckOut != nil {
		newCheckOut = NormalizeDate(*req.CheckOut)
		stayChanged = stayChanged || !newCheckOut.Equal(b.CheckOut)
	}

	if stayChanged {
		if !newCheckOut.After(newCheckIn) {
			return nil, ErrInvalidDateRange
		}

		rm, err := s.roomService.GetByID(ctx, newRoomID)
		if err != nil {
			if errors.Is(err, room.ErrNotFound) {
				return nil, ErrRoomNotFound
			}
			return nil, err
		}

		total, err := resolveTotal(rm, newCheckIn, newCheckOut)
		if err != nil {
			return nil, err
		}

		// Exclude the booking itself so an unchanged re-save never
		// self-rejects.
		hasOverlap, err := s.repo.HasOverlap(ctx, newRoomID, newCheckIn, newCheckOut, b.ID)
		if err != nil {
			return nil, err
		}
		if hasOverlap {
			return nil, ErrRoomUnavailable
		}

		b.RoomID = newRoomID
		b.CheckIn = newCheckIn
		b.CheckOut = newCheckOut
		b.TotalAmount = total
	}

	if req.Status != nil {
		st := Status(*req.Status)
		if !ValidStatus(st) {
			return nil, ErrInvalidStatus
		}
		if !CanTransition(b.Status, st) {
			return nil, ErrInvalidTransition
		}
		b.Status = st
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, b.ID)
}

// Cancel moves a booking to cancelled, freeing its dates for new bookings.
// The record is kept for history.
func (s *service) Cancel(ctx context.Context, id string) (*Booking, error) {
	cancelled := string(StatusCancelled)
	return s.Update(ctx, id, UpdateRequest{Status: &cancelled})
}
