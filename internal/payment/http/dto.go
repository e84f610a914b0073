package http

import (
	"time"

	"github.com/ferndale-labs/hotel-management-backend/internal/payment"
)

// RecordPaymentRequest defines the payload for recording a payment
// against a booking.
type RecordPaymentRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Method    string  `json:"method" binding:"required,oneof=cash card upi transfer"`
	Status    string  `json:"status" binding:"omitempty,oneof=paid pending"`
	Reference *string `json:"reference" binding:"omitempty,max=100"`
}

// Validate performs custom validation for RecordPaymentRequest.
func (r *RecordPaymentRequest) Validate() error {
	return nil
}

// PaymentResponse is the shape of payment data returned in API responses.
type PaymentResponse struct {
	ID        string     `json:"id"`
	BookingID string     `json:"booking_id"`
	Amount    float64    `json:"amount"`
	Method    string     `json:"method"`
	Status    string     `json:"status"`
	Reference *string    `json:"reference"`
	PaidAt    *time.Time `json:"paid_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		BookingID: p.BookingID,
		Amount:    p.Amount,
		Method:    string(p.Method),
		Status:    string(p.Status),
		Reference: p.Reference,
		PaidAt:    p.PaidAt,
		CreatedAt: p.CreatedAt,
	}
}

// BalanceResponse summarizes the paid and outstanding amounts for a booking.
type BalanceResponse struct {
	BookingID   string  `json:"booking_id"`
	TotalAmount float64 `json:"total_amount"`
	Paid        float64 `json:"paid"`
	Due         float64 `json:"due"`
}

func NewBalanceResponse(b *payment.Balance) BalanceResponse {
	return BalanceResponse{
		BookingID:   b.BookingID,
		TotalAmount: b.TotalAmount,
		Paid:        b.Paid,
		Due:         b.Due,
	}
}
