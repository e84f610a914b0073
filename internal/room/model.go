package room

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("room not found")
	ErrRoomNumberTaken    = errors.New("room number already in use")
	ErrInvalidStatus      = errors.New("invalid room status")
	ErrInvalidCleanStatus = errors.New("invalid cleaning status")
)

// Status is the operational state of a room.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

// CleanStatus is the housekeeping state of a room.
type CleanStatus string

const (
	CleanStatusClean      CleanStatus = "clean"
	CleanStatusDirty      CleanStatus = "dirty"
	CleanStatusInProgress CleanStatus = "in-progress"
)

// Room represents a bookable hotel room.
type Room struct {
	ID               string
	RoomNumber       string
	Type             string
	Floor            int
	Capacity         int
	Price            float64 // nightly price
	Status           Status
	CleanStatus      CleanStatus
	NeedsMaintenance bool
	MaintenanceNotes *string
	CreatedAt        time.Time
}

// Filter defines parameters for listing rooms.
type Filter struct {
	Status      string
	Type        string
	Floor       int
	CleanStatus string
	Page        int
	PageSize    int
}
