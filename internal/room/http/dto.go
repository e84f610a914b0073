package http

import (
	"time"

	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/request"
	"github.com/ferndale-labs/hotel-management-backend/internal/room"
)

// ListRoomsRequest defines query parameters for listing rooms.
type ListRoomsRequest struct {
	request.ListParams
	Status      string `form:"status" binding:"omitempty,oneof=available occupied maintenance"`
	Type        string `form:"type"`
	Floor       int    `form:"floor" binding:"omitempty,min=1"`
	CleanStatus string `form:"clean_status" binding:"omitempty,oneof=clean dirty in-progress"`
}

// Validate performs custom validation for ListRoomsRequest.
func (r *ListRoomsRequest) Validate() error {
	return nil
}

// RoomResponse is the shape of room data returned in API responses.
type RoomResponse struct {
	ID               string    `json:"id"`
	RoomNumber       string    `json:"room_number"`
	Type             string    `json:"type"`
	Floor            int       `json:"floor"`
	Capacity         int       `json:"capacity"`
	Price            float64   `json:"price"`
	Status           string    `json:"status"`
	CleanStatus      string    `json:"clean_status"`
	NeedsMaintenance bool      `json:"needs_maintenance"`
	MaintenanceNotes *string   `json:"maintenance_notes"`
	CreatedAt        time.Time `json:"created_at"`
}

// RoomTag is a brief representation of a room.
type RoomTag struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
}

// NewRoomResponse converts domain room.Room to RoomResponse used by the API.
func NewRoomResponse(rm *room.Room) RoomResponse {
	return RoomResponse{
		ID:               rm.ID,
		RoomNumber:       rm.RoomNumber,
		Type:             rm.Type,
		Floor:            rm.Floor,
		Capacity:         rm.Capacity,
		Price:            rm.Price,
		Status:           string(rm.Status),
		CleanStatus:      string(rm.CleanStatus),
		NeedsMaintenance: rm.NeedsMaintenance,
		MaintenanceNotes: rm.MaintenanceNotes,
		CreatedAt:        rm.CreatedAt,
	}
}

// CreateRoomRequest defines the payload for room creation.
type CreateRoomRequest struct {
	RoomNumber string  `json:"room_number" binding:"required"`
	Type       string  `json:"type" binding:"required"`
	Floor      int     `json:"floor" binding:"required"`
	Capacity   int     `json:"capacity" binding:"required"`
	Price      float64 `json:"price" binding:"required"`
	Status     string  `json:"status" binding:"omitempty,oneof=available occupied maintenance"`
}

// Validate performs custom validation for CreateRoomRequest.
func (r *CreateRoomRequest) Validate() error {
	return nil
}

// UpdateRoomRequest defines the payload for a partial room update.
type UpdateRoomRequest struct {
	RoomNumber *string  `json:"room_number"`
	Type       *string  `json:"type"`
	Floor      *int     `json:"floor"`
	Capacity   *int     `json:"capacity"`
	Price      *float64 `json:"price"`
	Status     *string  `json:"status" binding:"omitempty,oneof=available occupied maintenance"`
}

// Validate performs custom validation for UpdateRoomRequest.
func (r *UpdateRoomRequest) Validate() error {
	return nil
}

// HousekeepingRequest defines the payload for a housekeeping update.
type HousekeepingRequest struct {
	CleanStatus      *string `json:"clean_status" binding:"omitempty,oneof=clean dirty in-progress"`
	NeedsMaintenance *bool   `json:"needs_maintenance"`
	MaintenanceNotes *string `json:"maintenance_notes"`
}

// Validate performs custom validation for HousekeepingRequest.
func (r *HousekeepingRequest) Validate() error {
	return nil
}

// AvailabilityResponse is the result of the pre-submit availability hint.
// The authoritative check happens inside booking creation.
type AvailabilityResponse struct {
	Available bool `json:"available"`
}
