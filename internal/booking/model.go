package booking

import (
	"math"
	"net/http"
	"time"

	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrRoomUnavailable   = apperror.New(http.StatusConflict, "room not available for the chosen dates")
	ErrInvalidDateRange  = apperror.New(http.StatusBadRequest, "check-out date must be after check-in date")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidTransition = apperror.New(http.StatusBadRequest, "booking status transition not allowed")
	ErrRoomNotFound      = apperror.New(http.StatusNotFound, "room not found")
	ErrGuestNotFound     = apperror.New(http.StatusNotFound, "guest not found")
	ErrAmountTooLarge    = apperror.New(http.StatusBadRequest, "total amount must be less than 1,000,000")
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// MaxTotalAmount is the upper bound on a computed booking total.
const MaxTotalAmount = 1_000_000

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from one status to another.
// Allowed: pending→confirmed, pending→cancelled, confirmed→cancelled,
// confirmed→completed. Cancelled and completed are terminal.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCancelled || to == StatusCompleted
	}
	return false
}

// Booking represents a time-bound room reservation.
type Booking struct {
	ID          string
	GuestID     string
	GuestName   string
	RoomID      string
	RoomNumber  string
	CheckIn     time.Time
	CheckOut    time.Time
	Status      Status
	TotalAmount float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Active reports whether the booking occupies its room for overlap purposes.
func (b *Booking) Active() bool {
	return b.Status != StatusCancelled
}

// Filter defines parameters for listing bookings.
type Filter struct {
	GuestID     string
	RoomID      string
	Status      string
	CheckInFrom *time.Time // bookings ending after this date
	CheckInTo   *time.Time // bookings starting before this date
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

// NormalizeDate strips the time-of-day component, leaving a UTC calendar date.
// Stay dates are whole days; the hour a form was submitted must not shift them.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether two half-open [checkIn, checkOut) intervals
// intersect. A checkout on day D and a check-in on day D do not overlap:
// that is the turnover day, when the same room is cleaned and re-let.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// Nights returns the number of chargeable nights between checkIn and
// checkOut, rounding partial days up and never charging fewer than one
// night.
func Nights(checkIn, checkOut time.Time) int {
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		return 1
	}
	return n
}

// TotalAmount computes the stay total from a nightly price, rounded to
// two decimal places.
func TotalAmount(nightlyPrice float64, nights int) float64 {
	return math.Round(nightlyPrice*float64(nights)*100) / 100
}
