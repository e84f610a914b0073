package room

import (
	"context"
	"regexp"
	"strings"

	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/apperror"
)

var roomNumberPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

type CreateRequest struct {
	RoomNumber string
	Type       string
	Floor      int
	Capacity   int
	Price      float64
	Status     string
}

type UpdateRequest struct {
	RoomNumber *string
	Type       *string
	Floor      *int
	Capacity   *int
	Price      *float64
	Status     *string
}

// HousekeepingRequest carries the housekeeping-only fields.
type HousekeepingRequest struct {
	CleanStatus      *string
	NeedsMaintenance *bool
	MaintenanceNotes *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
	UpdateHousekeeping(ctx context.Context, id string, req HousekeepingRequest) (*Room, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validStatus(s Status) bool {
	return s == StatusAvailable || s == StatusOccupied || s == StatusMaintenance
}

func validCleanStatus(s CleanStatus) bool {
	return s == CleanStatusClean || s == CleanStatusDirty || s == CleanStatusInProgress
}

// validateFields checks the scalar room fields and returns a field-level
// validation error for the first violation found.
func validateFields(number, roomType string, floor, capacity int, price float64) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return apperror.Validation("room_number", "room number is required")
	}
	if len(number) > 10 {
		return apperror.Validation("room_number", "room number must be less than 10 characters")
	}
	if !roomNumberPattern.MatchString(number) {
		return apperror.Validation("room_number", "room number can only contain letters, numbers, and hyphens")
	}
	if strings.TrimSpace(roomType) == "" {
		return apperror.Validation("type", "room type is required")
	}
	if len(roomType) > 50 {
		return apperror.Validation("type", "room type must be less than 50 characters")
	}
	if floor < 1 || floor > 100 {
		return apperror.Validation("floor", "floor must be between 1 and 100")
	}
	if capacity < 1 || capacity > 20 {
		return apperror.Validation("capacity", "capacity must be between 1 and 20")
	}
	if price <= 0 {
		return apperror.Validation("price", "price must be positive")
	}
	if price > 100000 {
		return apperror.Validation("price", "price must be less than 100,000")
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if err := validateFields(req.RoomNumber, req.Type, req.Floor, req.Capacity, req.Price); err != nil {
		return nil, err
	}

	status := Status(req.Status)
	if req.Status == "" {
		status = StatusAvailable
	}
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	rm := &Room{
		RoomNumber:  strings.TrimSpace(req.RoomNumber),
		Type:        strings.TrimSpace(req.Type),
		Floor:       req.Floor,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Status:      status,
		CleanStatus: CleanStatusClean, // New rooms start clean
	}

	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoomNumber != nil {
		rm.RoomNumber = strings.TrimSpace(*req.RoomNumber)
	}
	if req.Type != nil {
		rm.Type = strings.TrimSpace(*req.Type)
	}
	if req.Floor != nil {
		rm.Floor = *req.Floor
	}
	if req.Capacity != nil {
		rm.Capacity = *req.Capacity
	}
	if req.Price != nil {
		rm.Price = *req.Price
	}
	if err := validateFields(rm.RoomNumber, rm.Type, rm.Floor, rm.Capacity, rm.Price); err != nil {
		return nil, err
	}

	if req.Status != nil {
		status := Status(*req.Status)
		if !validStatus(status) {
			return nil, ErrInvalidStatus
		}
		rm.Status = status
	}

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) UpdateHousekeeping(ctx context.Context, id string, req HousekeepingRequest) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CleanStatus != nil {
		cs := CleanStatus(*req.CleanStatus)
		if !validCleanStatus(cs) {
			return nil, ErrInvalidCleanStatus
		}
		rm.CleanStatus = cs
	}
	if req.NeedsMaintenance != nil {
		rm.NeedsMaintenance = *req.NeedsMaintenance
	}
	if req.MaintenanceNotes != nil {
		rm.MaintenanceNotes = req.MaintenanceNotes
	}

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
