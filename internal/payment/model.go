package payment

import (
	"net/http"
	"time"

	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "payment not found")
	ErrBookingNotFound = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidMethod   = apperror.New(http.StatusBadRequest, "invalid payment method")
	ErrInvalidStatus   = apperror.New(http.StatusBadRequest, "invalid payment status")
	ErrOverpayment     = apperror.New(http.StatusBadRequest, "payment exceeds outstanding balance")
)

type Method string

const (
	MethodCash     Method = "cash"
	MethodCard     Method = "card"
	MethodUPI      Method = "upi"
	MethodTransfer Method = "transfer"
)

func ValidMethod(m Method) bool {
	switch m {
	case MethodCash, MethodCard, MethodUPI, MethodTransfer:
		return true
	}
	return false
}

type Status string

const (
	StatusPaid     Status = "paid"
	StatusPending  Status = "pending"
	StatusRefunded Status = "refunded"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPaid, StatusPending, StatusRefunded:
		return true
	}
	return false
}

type Payment struct {
	ID        string
	BookingID string
	Amount    float64
	Method    Method
	Status    Status
	Reference *string
	PaidAt    *time.Time
	CreatedAt time.Time
}

// Balance summarizes the money side of a booking. Paid counts only
// payments in the paid status; refunded and pending rows do not reduce
// the amount due.
type Balance struct {
	BookingID   string
	TotalAmount float64
	Paid        float64
	Due         float64
}
