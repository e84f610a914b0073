package staff

import (
	"context"
	"strings"
	"time"

	"github.com/ferndale-labs/hotel-management-backend/internal/auth"
)

// UpdateRequest carries the optional fields for a staff account update.
type UpdateRequest struct {
	DisplayName *string
	Role        *string
	IsActive    *bool
}

type Service interface {
	Register(ctx context.Context, email, password, displayName string, role Role) (*Staff, error)
	Login(ctx context.Context, email, password string) (*Staff, error)
	GetByID(ctx context.Context, id string) (*Staff, error)
	List(ctx context.Context, filter Filter) ([]*Staff, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Staff, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
	}
}

func validRole(r Role) bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

func (s *service) Register(ctx context.Context, email, password, displayName string, role Role) (*Staff, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}
	if !validRole(role) {
		return nil, ErrInvalidRole
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	st := &Staff{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if displayName != "" {
		st.DisplayName = &displayName
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*Staff, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	st, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !st.IsActive {
		return nil, ErrInactiveStaff
	}

	if err := s.hasher.Compare(st.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Best effort; a failed timestamp update should not block login.
	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, st.ID, now); err == nil {
		st.LastLoginAt = &now
	}

	return st, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Staff, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Staff, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Staff, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		st.DisplayName = req.DisplayName
	}
	if req.Role != nil {
		role := Role(*req.Role)
		if !validRole(role) {
			return nil, ErrInvalidRole
		}
		st.Role = role
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}
