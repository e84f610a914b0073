package http

import (
	"time"

	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/request"
	"github.com/ferndale-labs/hotel-management-backend/internal/staff"
)

// ListStaffRequest defines query parameters for listing staff.
type ListStaffRequest struct {
	request.ListParams
	Email       string `form:"email"`
	DisplayName string `form:"display_name"`
	Role        string `form:"role" binding:"omitempty,oneof=admin manager receptionist housekeeping"`
	IsActive    *bool  `form:"is_active"`
}

// Validate performs custom validation for ListStaffRequest.
func (r *ListStaffRequest) Validate() error {
	return nil
}

// StaffResponse is the shape of staff data returned in API responses.
type StaffResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName *string    `json:"display_name"`
	Role        string     `json:"role"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
	IsActive    bool       `json:"is_active"`
}

// NewStaffResponse converts domain staff.Staff to StaffResponse used by the API.
func NewStaffResponse(s *staff.Staff) StaffResponse {
	var lastLoginAt *time.Time
	if s.LastLoginAt != nil {
		ll := *s.LastLoginAt
		lastLoginAt = &ll
	}

	return StaffResponse{
		ID:          s.ID,
		Email:       s.Email,
		DisplayName: s.DisplayName,
		Role:        string(s.Role),
		CreatedAt:   s.CreatedAt,
		LastLoginAt: lastLoginAt,
		IsActive:    s.IsActive,
	}
}

// RegisterRequest defines the payload for staff registration.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required"`
	Role        string `json:"role" binding:"required,oneof=admin manager receptionist housekeeping"`
}

// Validate performs custom validation for RegisterRequest.
func (r *RegisterRequest) Validate() error {
	return nil
}

// LoginRequest defines the payload for staff login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Validate performs custom validation for LoginRequest.
func (r *LoginRequest) Validate() error {
	return nil
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	Staff       StaffResponse `json:"staff"`
}

// MeResponse wraps the current staff member's profile.
type MeResponse struct {
	Staff StaffResponse `json:"staff"`
}

// UpdateStaffRequest defines the payload for a staff account update.
type UpdateStaffRequest struct {
	DisplayName *string `json:"display_name"`
	Role        *string `json:"role" binding:"omitempty,oneof=admin manager receptionist housekeeping"`
	IsActive    *bool   `json:"is_active"`
}

// Validate performs custom validation for UpdateStaffRequest.
func (r *UpdateStaffRequest) Validate() error {
	return nil
}
