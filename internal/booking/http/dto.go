package http

import (
	"time"

	"github.com/ferndale-labs/hotel-management-backend/internal/booking"
	guestHttp "github.com/ferndale-labs/hotel-management-backend/internal/guest/http"
	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/request"
	roomHttp "github.com/ferndale-labs/hotel-management-backend/internal/room/http"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	GuestID     string `form:"guest_id" binding:"omitempty,uuid"`
	RoomID      string `form:"room_id" binding:"omitempty,uuid"`
	Status      string `form:"status" binding:"omitempty,oneof=confirmed pending cancelled completed"`
	CheckInFrom string `form:"check_in_from" binding:"omitempty,datetime=2006-01-02"`
	CheckInTo   string `form:"check_in_to" binding:"omitempty,datetime=2006-01-02"`
	SortBy      string `form:"sort_by" binding:"omitempty,oneof=check_in check_out created_at status total_amount"`
}

// Validate performs custom validation for ListBookingsRequest.
func (r *ListBookingsRequest) Validate() error {
	if r.CheckInFrom != "" && r.CheckInTo != "" {
		from, _ := time.Parse(booking.DateLayout, r.CheckInFrom)
		to, _ := time.Parse(booking.DateLayout, r.CheckInTo)
		if from.After(to) {
			return booking.ErrInvalidDateRange
		}
	}
	return nil
}

type BookingResponse struct {
	ID          string             `json:"id"`
	Guest       guestHttp.GuestTag `json:"guest"`
	Room        roomHttp.RoomTag   `json:"room"`
	CheckIn     string             `json:"check_in"`
	CheckOut    string             `json:"check_out"`
	Status      string             `json:"status"`
	TotalAmount float64            `json:"total_amount"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		Guest:       guestHttp.GuestTag{ID: b.GuestID, Name: b.GuestName},
		Room:        roomHttp.RoomTag{ID: b.RoomID, RoomNumber: b.RoomNumber},
		CheckIn:     b.CheckIn.Format(booking.DateLayout),
		CheckOut:    b.CheckOut.Format(booking.DateLayout),
		Status:      string(b.Status),
		TotalAmount: b.TotalAmount,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

type CreateBookingRequest struct {
	GuestID  string `json:"guest_id" binding:"required,uuid"`
	RoomID   string `json:"room_id" binding:"required,uuid"`
	CheckIn  string `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" binding:"required,datetime=2006-01-02"`
	Status   string `json:"status" binding:"omitempty,oneof=confirmed pending"`
}

// Validate performs custom validation for CreateBookingRequest.
func (r *CreateBookingRequest) Validate() error {
	checkIn, _ := time.Parse(booking.DateLayout, r.CheckIn)
	checkOut, _ := time.Parse(booking.DateLayout, r.CheckOut)
	if !checkOut.After(checkIn) {
		return booking.ErrInvalidDateRange
	}
	return nil
}

type UpdateBookingRequest struct {
	RoomID   *string `json:"room_id" binding:"omitempty,uuid"`
	CheckIn  *string `json:"check_in" binding:"omitempty,datetime=2006-01-02"`
	CheckOut *string `json:"check_out" binding:"omitempty,datetime=2006-01-02"`
	Status   *string `json:"status" binding:"omitempty,oneof=confirmed pending cancelled completed"`
}

// Validate performs custom validation for UpdateBookingRequest.
func (r *UpdateBookingRequest) Validate() error {
	if r.CheckIn != nil && r.CheckOut != nil {
		checkIn, _ := time.Parse(booking.DateLayout, *r.CheckIn)
		checkOut, _ := time.Parse(booking.DateLayout, *r.CheckOut)
		if !checkOut.After(checkIn) {
			return booking.ErrInvalidDateRange
		}
	}
	return nil
}
