package guest

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
	guests map[string]*Guest
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{guests: make(map[string]*Guest)}
}

func (r *fakeRepository) Create(ctx context.Context, g *Guest) error {
	for _, existing := range r.guests {
		if existing.Email == g.Email {
			return ErrEmailTaken
		}
	}
	r.nextID++
	g.ID = fmt.Sprintf("guest-%d", r.nextID)
	stored := *g
	r.guests[g.ID] = &stored
	return nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id string) (*Guest, error) {
	g, ok := r.guests[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeRepository) List(ctx context.Context, filter Filter) ([]*Guest, int, error) {
	var out []*Guest
	for _, g := range r.guests {
		copied := *g
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeRepository) Update(ctx context.Context, g *Guest) error {
	if _, ok := r.guests[g.ID]; !ok {
		return ErrNotFound
	}
	stored := *g
	r.guests[g.ID] = &stored
	return nil
}

func validationField(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	return appErr.Field
}

func TestCreateGuest(t *testing.T) {
	ctx := context.Background()

	t.Run("Success normalizes email", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		g, err := svc.Create(ctx, CreateRequest{
			Name:  "Ada Lovelace",
			Email: "Ada@Example.COM",
			Phone: "+1 (555) 123-4567",
		})
		require.NoError(t, err)

		assert.Equal(t, "ada@example.com", g.Email)
		assert.Equal(t, StatusActive, g.Status)
	})

	t.Run("Field validation", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		tests := []struct {
			name      string
			req       CreateRequest
			wantField string
		}{
			{
				name:      "Name too short",
				req:       CreateRequest{Name: "A", Email: "a@b.com", Phone: "5551234567"},
				wantField: "name",
			},
			{
				name:      "Name with digits",
				req:       CreateRequest{Name: "Ada 2", Email: "a@b.com", Phone: "5551234567"},
				wantField: "name",
			},
			{
				name:      "Bad email",
				req:       CreateRequest{Name: "Ada Lovelace", Email: "not-an-email", Phone: "5551234567"},
				wantField: "email",
			},
			{
				name:      "Phone too short",
				req:       CreateRequest{Name: "Ada Lovelace", Email: "a@b.com", Phone: "12345"},
				wantField: "phone",
			},
			{
				name:      "Phone with letters",
				req:       CreateRequest{Name: "Ada Lovelace", Email: "a@b.com", Phone: "555CALLNOW12"},
				wantField: "phone",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Create(ctx, tt.req)
				require.Error(t, err)
				assert.Equal(t, tt.wantField, validationField(t, err))
			})
		}
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		req := CreateRequest{
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
			Phone: "5551234567",
		}
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)

		req.Name = "Grace Hopper"
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestDeactivateGuest(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	g, err := svc.Create(ctx, CreateRequest{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Phone: "5551234567",
	})
	require.NoError(t, err)

	deactivated, err := svc.Deactivate(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, deactivated.Status)

	// Record still readable after deactivation.
	got, err := svc.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, got.Status)

	// Second deactivation is rejected.
	_, err = svc.Deactivate(ctx, g.ID)
	assert.ErrorIs(t, err, ErrAlreadyInactive)
}
