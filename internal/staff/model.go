package staff

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("staff member not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveStaff      = errors.New("staff account is inactive")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrInvalidRole        = errors.New("invalid staff role")
)

// Role determines which parts of the hotel a staff member may manage.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleReceptionist Role = "receptionist"
	RoleHousekeeping Role = "housekeeping"
)

// ValidRoles lists every accepted staff role.
var ValidRoles = []Role{RoleAdmin, RoleManager, RoleReceptionist, RoleHousekeeping}

// CanManageBookings reports whether the role may create or modify bookings.
func (r Role) CanManageBookings() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleReceptionist
}

// CanManageHousekeeping reports whether the role may update cleaning and maintenance state.
func (r Role) CanManageHousekeeping() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleHousekeeping
}

// Staff represents a hotel staff account.
type Staff struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	DisplayName  *string
	Role         Role
	CreatedAt    time.Time
	LastLoginAt  *time.Time
	IsActive     bool
}

// Filter defines filter options for listing staff.
type Filter struct {
	Email       string
	DisplayName string
	Role        string
	IsActive    *bool // Use pointer to distinguish between false and nil (not set)

	Page     int
	PageSize int
}
