package feedback

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferndale-labs/hotel-management-backend/internal/booking"
	"github.com/ferndale-labs/hotel-management-backend/internal/guest"
	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/apperror"
)

type fakeRepository struct {
	nextID int
	items  map[string]*Feedback
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{items: make(map[string]*Feedback)}
}

func (r *fakeRepository) Create(ctx context.Context, f *Feedback) error {
	r.nextID++
	f.ID = fmt.Sprintf("feedback-%d", r.nextID)
	f.CreatedAt = time.Now()
	stored := *f
	r.items[f.ID] = &stored
	return nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id string) (*Feedback, error) {
	f, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *f
	return &copied, nil
}

func (r *fakeRepository) List(ctx context.Context, filter Filter) ([]*Feedback, int, error) {
	var out []*Feedback
	for _, f := range r.items {
		copied := *f
		out = append(out, &copied)
	}
	return out, len(out), nil
}

type fakeGuestService struct {
	guests map[string]*guest.Guest
}

func (s *fakeGuestService) Create(ctx context.Context, req guest.CreateRequest) (*guest.Guest, error) {
	panic("not used")
}

func (s *fakeGuestService) GetByID(ctx context.Context, id string) (*guest.Guest, error) {
	g, ok := s.guests[id]
	if !ok {
		return nil, guest.ErrNotFound
	}
	return g, nil
}

func (s *fakeGuestService) List(ctx context.Context, filter guest.Filter) ([]*guest.Guest, int, error) {
	panic("not used")
}

func (s *fakeGuestService) Update(ctx context.Context, id string, req guest.UpdateRequest) (*guest.Guest, error) {
	panic("not used")
}

func (s *fakeGuestService) Deactivate(ctx context.Context, id string) (*guest.Guest, error) {
	panic("not used")
}

type fakeBookingService struct {
	bookings map[string]*booking.Booking
}

func (s *fakeBookingService) Create(ctx context.Context, req booking.CreateRequest) (*booking.Booking, error) {
	panic("not used")
}

func (s *fakeBookingService) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return b, nil
}

func (s *fakeBookingService) List(ctx context.Context, filter booking.Filter) ([]*booking.Booking, int, error) {
	panic("not used")
}

func (s *fakeBookingService) Update(ctx context.Context, id string, req booking.UpdateRequest) (*booking.Booking, error) {
	panic("not used")
}

func (s *fakeBookingService) Cancel(ctx context.Context, id string) (*booking.Booking, error) {
	panic("not used")
}

func (s *fakeBookingService) CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (bool, error) {
	panic("not used")
}

func newTestService() Service {
	guests := &fakeGuestService{guests: map[string]*guest.Guest{
		"guest-1": {ID: "guest-1", Name: "Ada Lovelace"},
	}}
	bookings := &fakeBookingService{bookings: map[string]*booking.Booking{
		"booking-1": {ID: "booking-1", GuestID: "guest-1"},
		"booking-2": {ID: "booking-2", GuestID: "guest-other"},
	}}
	return NewService(newFakeRepository(), guests, bookings)
}

func TestCreateFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("Success without booking", func(t *testing.T) {
		svc := newTestService()

		comment := "Lovely stay"
		f, err := svc.Create(ctx, CreateRequest{
			GuestID:  "guest-1",
			Rating:   5,
			Comments: &comment,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, f.ID)
		assert.Equal(t, "Ada Lovelace", f.GuestName)
		assert.Nil(t, f.BookingID)
	})

	t.Run("Success linked to own booking", func(t *testing.T) {
		svc := newTestService()

		bookingID := "booking-1"
		f, err := svc.Create(ctx, CreateRequest{
			GuestID:   "guest-1",
			BookingID: &bookingID,
			Rating:    4,
		})
		require.NoError(t, err)
		require.NotNil(t, f.BookingID)
		assert.Equal(t, bookingID, *f.BookingID)
	})

	t.Run("Rating out of range rejected", func(t *testing.T) {
		svc := newTestService()

		for _, rating := range []int{0, 6, -1} {
			_, err := svc.Create(ctx, CreateRequest{GuestID: "guest-1", Rating: rating})
			require.Error(t, err)

			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "rating", appErr.Field)
		}
	})

	t.Run("Unknown guest rejected", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Create(ctx, CreateRequest{GuestID: "guest-404", Rating: 3})
		assert.ErrorIs(t, err, ErrGuestNotFound)
	})

	t.Run("Unknown booking rejected", func(t *testing.T) {
		svc := newTestService()

		bookingID := "booking-404"
		_, err := svc.Create(ctx, CreateRequest{
			GuestID:   "guest-1",
			BookingID: &bookingID,
			Rating:    3,
		})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("Someone else's booking rejected", func(t *testing.T) {
		svc := newTestService()

		bookingID := "booking-2"
		_, err := svc.Create(ctx, CreateRequest{
			GuestID:   "guest-1",
			BookingID: &bookingID,
			Rating:    3,
		})
		require.Error(t, err)

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "booking_id", appErr.Field)
	})

	t.Run("Whitespace-only comment dropped", func(t *testing.T) {
		svc := newTestService()

		comment := "   "
		f, err := svc.Create(ctx, CreateRequest{
			GuestID:  "guest-1",
			Rating:   5,
			Comments: &comment,
		})
		require.NoError(t, err)
		assert.Nil(t, f.Comments)
	})
}
