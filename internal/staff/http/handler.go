package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ferndale-labs/hotel-management-backend/internal/auth"
	"github.com/ferndale-labs/hotel-management-backend/internal/staff"
)

type StaffHandler struct {
	staffService staff.Service
	jwtManager   *auth.JWTManager
}

func NewHandler(staffService staff.Service, jwtManager *auth.JWTManager) *StaffHandler {
	return &StaffHandler{
		staffService: staffService,
		jwtManager:   jwtManager,
	}
}

// Register handles the staff registration process.
// It validates the payload and creates a new account if the email is unique.
func (h *StaffHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()

	s, err := h.staffService.Register(ctx, req.Email, req.Password, req.DisplayName, staff.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrEmailAlreadyUsed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, staff.ErrEmailRequired),
			errors.Is(err, staff.ErrPasswordTooShort),
			errors.Is(err, staff.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create staff account"})
		}
		return
	}

	c.JSON(http.StatusCreated, MeResponse{Staff: NewStaffResponse(s)})
}

// Login authenticates a staff member using email and password.
// On success, it returns a JWT access token and the staff profile.
func (h *StaffHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()

	s, err := h.staffService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrInvalidCredentials),
			errors.Is(err, staff.ErrNotFound),
			errors.Is(err, staff.ErrInactiveStaff):
			// For security reasons, do not reveal which condition failed
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(s.ID, s.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		Staff:       NewStaffResponse(s),
	})
}

// Me retrieves the profile of the currently authenticated staff member.
// It relies on the staff ID extracted from the JWT context.
func (h *StaffHandler) Me(c *gin.Context) {
	staffID := auth.GetStaffID(c)
	if staffID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if _, err := uuid.Parse(staffID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	s, err := h.staffService.GetByID(c.Request.Context(), staffID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "staff member not found"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{Staff: NewStaffResponse(s)})
}

// List retrieves a paginated list of staff with optional filtering.
// Access Control: Admin only.
func (h *StaffHandler) List(c *gin.Context) {
	var req ListStaffRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := staff.Filter{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        req.Role,
		IsActive:    req.IsActive,
		Page:        req.Page,
		PageSize:    req.PageSize,
	}

	items, total, err := h.staffService.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list staff"})
		return
	}

	resp := make([]StaffResponse, len(items))
	for i, s := range items {
		resp[i] = NewStaffResponse(s)
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     resp,
		"page":      filter.Page,
		"page_size": filter.PageSize,
		"total":     total,
	})
}

// Get retrieves one staff account by ID. Admin only.
func (h *StaffHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	s, err := h.staffService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "staff member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get staff member"})
		return
	}

	c.JSON(http.StatusOK, NewStaffResponse(s))
}

// Update modifies a staff account (display name, role, active flag). Admin only.
func (h *StaffHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	s, err := h.staffService.Update(c.Request.Context(), id, staff.UpdateRequest{
		DisplayName: req.DisplayName,
		Role:        req.Role,
		IsActive:    req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "staff member not found"})
		case errors.Is(err, staff.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update staff member"})
		}
		return
	}

	c.JSON(http.StatusOK, NewStaffResponse(s))
}
