package payment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferndale-labs/hotel-management-backend/internal/booking"
)

type fakeRepository struct {
	nextID   int
	payments map[string]*Payment
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{payments: make(map[string]*Payment)}
}

func (r *fakeRepository) Create(ctx context.Context, p *Payment) error {
	r.nextID++
	p.ID = fmt.Sprintf("payment-%d", r.nextID)
	p.CreatedAt = time.Now()
	stored := *p
	r.payments[p.ID] = &stored
	return nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id string) (*Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeRepository) ListByBooking(ctx context.Context, bookingID string) ([]*Payment, error) {
	var out []*Payment
	for _, p := range r.payments {
		if p.BookingID == bookingID {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	p, ok := r.payments[id]
	if !ok {
		return ErrNotFound
	}
	p.Status = status
	return nil
}

func (r *fakeRepository) SumPaid(ctx context.Context, bookingID string) (float64, error) {
	var sum float64
	for _, p := range r.payments {
		if p.BookingID == bookingID && p.Status == StatusPaid {
			sum += p.Amount
		}
	}
	return sum, nil
}

// fakeBookingService serves a fixed set of bookings.
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

func newTestService() (Service, *fakeRepository) {
	repo := newFakeRepository()
	bookings := &fakeBookingService{bookings: map[string]*booking.Booking{
		"booking-1": {ID: "booking-1", TotalAmount: 300},
	}}
	return NewService(repo, bookings), repo
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success defaults to paid", func(t *testing.T) {
		svc, _ := newTestService()

		p, err := svc.Record(ctx, RecordRequest{
			BookingID: "booking-1",
			Amount:    150,
			Method:    "card",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, p.ID)
		assert.Equal(t, StatusPaid, p.Status)
		assert.Equal(t, MethodCard, p.Method)
		require.NotNil(t, p.PaidAt)
	})

	t.Run("Pending payment has no paid timestamp", func(t *testing.T) {
		svc, _ := newTestService()

		p, err := svc.Record(ctx, RecordRequest{
			BookingID: "booking-1",
			Amount:    150,
			Method:    "upi",
			Status:    "pending",
		})
		require.NoError(t, err)
		assert.Nil(t, p.PaidAt)
	})

	t.Run("Non-positive amount rejected", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Record(ctx, RecordRequest{
			BookingID: "booking-1",
			Amount:    0,
			Method:    "cash",
		})
		assert.Error(t, err)
	})

	t.Run("Unknown method rejected", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Record(ctx, RecordRequest{
			BookingID: "booking-1",
			Amount:    50,
			Method:    "cheque",
		})
		assert.ErrorIs(t, err, ErrInvalidMethod)
	})

	t.Run("Unknown booking rejected", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Record(ctx, RecordRequest{
			BookingID: "booking-404",
			Amount:    50,
			Method:    "cash",
		})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("Overpayment rejected", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Record(ctx, RecordRequest{
			BookingID: "booking-1",
			Amount:    200,
			Method:    "cash",
		})
		require.NoError(t, err)

		// 200 paid of 300; another 150 would overshoot.
		_, err = svc.Record(ctx, RecordRequest{
			BookingID: "booking-1",
			Amount:    150,
			Method:    "cash",
		})
		assert.ErrorIs(t, err, ErrOverpayment)
	})
}

func TestRefund(t *testing.T) {
	ctx := context.Background()

	t.Run("Paid payment refunded", func(t *testing.T) {
		svc, _ := newTestService()

		p, err := svc.Record(ctx, RecordRequest{
			BookingID: "booking-1",
			Amount:    100,
			Method:    "card",
		})
		require.NoError(t, err)

		refunded, err := svc.Refund(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusRefunded, refunded.Status)
	})

	t.Run("Pending payment cannot be refunded", func(t *testing.T) {
		svc, _ := newTestService()

		p, err := svc.Record(ctx, RecordRequest{
			BookingID: "booking-1",
			Amount:    100,
			Method:    "card",
			Status:    "pending",
		})
		require.NoError(t, err)

		_, err = svc.Refund(ctx, p.ID)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestBalance(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Record(ctx, RecordRequest{
		BookingID: "booking-1",
		Amount:    100,
		Method:    "cash",
	})
	require.NoError(t, err)

	// Pending rows do not reduce the amount due.
	_, err = svc.Record(ctx, RecordRequest{
		BookingID: "booking-1",
		Amount:    100,
		Method:    "transfer",
		Status:    "pending",
	})
	require.NoError(t, err)

	b, err := svc.Balance(ctx, "booking-1")
	require.NoError(t, err)

	assert.Equal(t, 300.0, b.TotalAmount)
	assert.Equal(t, 100.0, b.Paid)
	assert.Equal(t, 200.0, b.Due)
}

func TestRefundRestoresBalance(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	p, err := svc.Record(ctx, RecordRequest{
		BookingID: "booking-1",
		Amount:    300,
		Method:    "card",
	})
	require.NoError(t, err)

	_, err = svc.Refund(ctx, p.ID)
	require.NoError(t, err)

	b, err := svc.Balance(ctx, "booking-1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.Paid)
	assert.Equal(t, 300.0, b.Due)
}
