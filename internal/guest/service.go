package guest

import (
	"context"
	"net/mail"
	"regexp"
	"strings"

	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/apperror"
)

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	phonePattern = regexp.MustCompile(`^[+\d\s()-]+$`)
)

type CreateRequest struct {
	Name  string
	Email string
	Phone string
}

type UpdateRequest struct {
	Name  *string
	Email *string
	Phone *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Guest, error)
	GetByID(ctx context.Context, id string) (*Guest, error)
	List(ctx context.Context, filter Filter) ([]*Guest, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Guest, error)
	Deactivate(ctx context.Context, id string) (*Guest, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// validateFields checks the guest profile fields and returns a field-level
// validation error for the first violation found.
func validateFields(name, email, phone string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return apperror.Validation("name", "name must be at least 2 characters")
	}
	if len(name) > 100 {
		return apperror.Validation("name", "name must be less than 100 characters")
	}
	if !namePattern.MatchString(name) {
		return apperror.Validation("name", "name can only contain letters, spaces, hyphens, and apostrophes")
	}

	email = strings.TrimSpace(email)
	if len(email) > 255 {
		return apperror.Validation("email", "email must be less than 255 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apperror.Validation("email", "invalid email address")
	}

	phone = strings.TrimSpace(phone)
	if len(phone) < 10 {
		return apperror.Validation("phone", "phone number must be at least 10 digits")
	}
	if len(phone) > 20 {
		return apperror.Validation("phone", "phone number must be less than 20 characters")
	}
	if !phonePattern.MatchString(phone) {
		return apperror.Validation("phone", "invalid phone number format")
	}

	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Guest, error) {
	if err := validateFields(req.Name, req.Email, req.Phone); err != nil {
		return nil, err
	}

	g := &Guest{
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:  strings.TrimSpace(req.Phone),
		Status: StatusActive,
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Guest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Guest, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Guest, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		g.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		g.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		g.Phone = strings.TrimSpace(*req.Phone)
	}
	if err := validateFields(g.Name, g.Email, g.Phone); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Deactivate marks a guest as inactive. Guests are never hard-deleted,
// so their booking history remains queryable.
func (s *service) Deactivate(ctx context.Context, id string) (*Guest, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Status == StatusInactive {
		return nil, ErrAlreadyInactive
	}

	g.Status = StatusInactive
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}
