package http

import (
	"time"

	"github.com/ferndale-labs/hotel-management-backend/internal/guest"
	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/request"
)

// ListGuestsRequest defines query parameters for listing guests.
type ListGuestsRequest struct {
	request.ListParams
	Name   string `form:"name"`
	Email  string `form:"email"`
	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
}

// Validate performs custom validation for ListGuestsRequest.
func (r *ListGuestsRequest) Validate() error {
	return nil
}

// GuestResponse is the shape of guest data returned in API responses.
type GuestResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// GuestTag is a brief representation of a guest.
type GuestTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewGuestResponse converts domain guest.Guest to GuestResponse used by the API.
func NewGuestResponse(g *guest.Guest) GuestResponse {
	return GuestResponse{
		ID:        g.ID,
		Name:      g.Name,
		Email:     g.Email,
		Phone:     g.Phone,
		Status:    string(g.Status),
		CreatedAt: g.CreatedAt,
	}
}

// CreateGuestRequest defines the payload for guest creation.
type CreateGuestRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// Validate performs custom validation for CreateGuestRequest.
func (r *CreateGuestRequest) Validate() error {
	return nil
}

// UpdateGuestRequest defines the payload for a partial guest update.
type UpdateGuestRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Validate performs custom validation for UpdateGuestRequest.
func (r *UpdateGuestRequest) Validate() error {
	return nil
}
