package room

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/apperror"
)

type fakeRepository struct {
	nextID int
	rooms  map[string]*Room
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rooms: make(map[string]*Room)}
}

func (r *fakeRepository) Create(ctx context.Context, rm *Room) error {
	for _, existing := range r.rooms {
		if existing.RoomNumber == rm.RoomNumber {
			return ErrRoomNumberTaken
		}
	}
	r.nextID++
	rm.ID = fmt.Sprintf("room-%d", r.nextID)
	stored := *rm
	r.rooms[rm.ID] = &stored
	return nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	rm, ok := r.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *rm
	return &copied, nil
}

func (r *fakeRepository) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	var out []*Room
	for _, rm := range r.rooms {
		copied := *rm
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeRepository) Update(ctx context.Context, rm *Room) error {
	if _, ok := r.rooms[rm.ID]; !ok {
		return ErrNotFound
	}
	stored := *rm
	r.rooms[rm.ID] = &stored
	return nil
}

func (r *fakeRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.rooms[id]; !ok {
		return ErrNotFound
	}
	delete(r.rooms, id)
	return nil
}

func validRequest() CreateRequest {
	return CreateRequest{
		RoomNumber: "101",
		Type:       "double",
		Floor:      1,
		Capacity:   2,
		Price:      120,
	}
}

func TestCreateRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("Success with defaults", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		rm, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		assert.Equal(t, StatusAvailable, rm.Status)
		assert.Equal(t, CleanStatusClean, rm.CleanStatus)
		assert.False(t, rm.NeedsMaintenance)
	})

	t.Run("Field validation", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		tests := []struct {
			name      string
			mutate    func(*CreateRequest)
			wantField string
		}{
			{
				name:      "Empty room number",
				mutate:    func(r *CreateRequest) { r.RoomNumber = "  " },
				wantField: "room_number",
			},
			{
				name:      "Room number too long",
				mutate:    func(r *CreateRequest) { r.RoomNumber = "12345678901" },
				wantField: "room_number",
			},
			{
				name:      "Room number with spaces",
				mutate:    func(r *CreateRequest) { r.RoomNumber = "1 01" },
				wantField: "room_number",
			},
			{
				name:      "Missing type",
				mutate:    func(r *CreateRequest) { r.Type = "" },
				wantField: "type",
			},
			{
				name:      "Floor zero",
				mutate:    func(r *CreateRequest) { r.Floor = 0 },
				wantField: "floor",
			},
			{
				name:      "Floor too high",
				mutate:    func(r *CreateRequest) { r.Floor = 101 },
				wantField: "floor",
			},
			{
				name:      "Capacity zero",
				mutate:    func(r *CreateRequest) { r.Capacity = 0 },
				wantField: "capacity",
			},
			{
				name:      "Capacity too large",
				mutate:    func(r *CreateRequest) { r.Capacity = 21 },
				wantField: "capacity",
			},
			{
				name:      "Free room",
				mutate:    func(r *CreateRequest) { r.Price = 0 },
				wantField: "price",
			},
			{
				name:      "Price above cap",
				mutate:    func(r *CreateRequest) { r.Price = 100001 },
				wantField: "price",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validRequest()
				tt.mutate(&req)

				_, err := svc.Create(ctx, req)
				require.Error(t, err)

				var appErr *apperror.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, tt.wantField, appErr.Field)
			})
		}
	})

	t.Run("Duplicate room number rejected", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		_, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		_, err = svc.Create(ctx, validRequest())
		assert.ErrorIs(t, err, ErrRoomNumberTaken)
	})

	t.Run("Unknown status rejected", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		req := validRequest()
		req.Status = "renovating"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestUpdateHousekeeping(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	rm, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	dirty := "dirty"
	needs := true
	notes := "leaking faucet"
	updated, err := svc.UpdateHousekeeping(ctx, rm.ID, HousekeepingRequest{
		CleanStatus:      &dirty,
		NeedsMaintenance: &needs,
		MaintenanceNotes: &notes,
	})
	require.NoError(t, err)

	assert.Equal(t, CleanStatusDirty, updated.CleanStatus)
	assert.True(t, updated.NeedsMaintenance)
	require.NotNil(t, updated.MaintenanceNotes)
	assert.Equal(t, notes, *updated.MaintenanceNotes)

	t.Run("Unknown clean status rejected", func(t *testing.T) {
		bogus := "sparkling"
		_, err := svc.UpdateHousekeeping(ctx, rm.ID, HousekeepingRequest{CleanStatus: &bogus})
		assert.ErrorIs(t, err, ErrInvalidCleanStatus)
	})
}

func TestDeleteRoom(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	rm, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, rm.ID))

	_, err = svc.GetByID(ctx, rm.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, rm.ID), ErrNotFound)
}
