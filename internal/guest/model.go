package guest

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("guest not found")
	ErrEmailTaken      = errors.New("a guest with this email already exists")
	ErrInvalidStatus   = errors.New("invalid guest status")
	ErrAlreadyInactive = errors.New("guest is already inactive")
)

// Status marks whether a guest profile is in active use.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Guest represents a hotel guest profile created by the front desk.
// Guests are deactivated rather than deleted so booking history stays intact.
type Guest struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Status    Status
	CreatedAt time.Time
}

// Filter defines parameters for listing guests.
type Filter struct {
	Name     string
	Email    string
	Status   string
	Page     int
	PageSize int
}
