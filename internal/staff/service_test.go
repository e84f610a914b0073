package staff

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferndale-labs/hotel-management-backend/internal/auth"
)

type fakeRepository struct {
	nextID int
	staff  map[string]*Staff
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{staff: make(map[string]*Staff)}
}

func (r *fakeRepository) GetByEmail(ctx context.Context, email string) (*Staff, error) {
	for _, st := range r.staff {
		if st.Email == email {
			copied := *st
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepository) GetByID(ctx context.Context, id string) (*Staff, error) {
	st, ok := r.staff[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *st
	return &copied, nil
}

func (r *fakeRepository) Create(ctx context.Context, st *Staff) error {
	for _, existing := range r.staff {
		if existing.Email == st.Email {
			return ErrEmailAlreadyUsed
		}
	}
	r.nextID++
	st.ID = fmt.Sprintf("staff-%d", r.nextID)
	st.CreatedAt = time.Now()
	stored := *st
	r.staff[st.ID] = &stored
	return nil
}

func (r *fakeRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	st, ok := r.staff[id]
	if !ok {
		return ErrNotFound
	}
	st.LastLoginAt = &t
	return nil
}

func (r *fakeRepository) List(ctx context.Context, filter Filter) ([]*Staff, int, error) {
	var out []*Staff
	for _, st := range r.staff {
		copied := *st
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeRepository) Update(ctx context.Context, st *Staff) error {
	if _, ok := r.staff[st.ID]; !ok {
		return ErrNotFound
	}
	stored := *st
	r.staff[st.ID] = &stored
	return nil
}

func newTestService() Service {
	// Low bcrypt cost keeps the tests fast.
	return NewService(newFakeRepository(), auth.NewBcryptPasswordHasherWithCost(4))
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Register and login round trip", func(t *testing.T) {
		svc := newTestService()

		st, err := svc.Register(ctx, "Desk@Hotel.com", "secret-pass", "Front Desk", RoleReceptionist)
		require.NoError(t, err)

		assert.Equal(t, "desk@hotel.com", st.Email)
		assert.Equal(t, RoleReceptionist, st.Role)
		assert.True(t, st.IsActive)
		assert.NotEqual(t, "secret-pass", st.PasswordHash)

		logged, err := svc.Login(ctx, "desk@hotel.com", "secret-pass")
		require.NoError(t, err)
		assert.Equal(t, st.ID, logged.ID)
		assert.NotNil(t, logged.LastLoginAt)
	})

	t.Run("Wrong password rejected", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Register(ctx, "desk@hotel.com", "secret-pass", "", RoleReceptionist)
		require.NoError(t, err)

		_, err = svc.Login(ctx, "desk@hotel.com", "wrong-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Short password rejected", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Register(ctx, "desk@hotel.com", "short", "", RoleReceptionist)
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("Unknown role rejected", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Register(ctx, "desk@hotel.com", "secret-pass", "", Role("janitor"))
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Register(ctx, "desk@hotel.com", "secret-pass", "", RoleReceptionist)
		require.NoError(t, err)

		_, err = svc.Register(ctx, "desk@hotel.com", "other-pass", "", RoleManager)
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})

	t.Run("Inactive account cannot log in", func(t *testing.T) {
		svc := newTestService()

		st, err := svc.Register(ctx, "desk@hotel.com", "secret-pass", "", RoleReceptionist)
		require.NoError(t, err)

		inactive := false
		_, err = svc.Update(ctx, st.ID, UpdateRequest{IsActive: &inactive})
		require.NoError(t, err)

		_, err = svc.Login(ctx, "desk@hotel.com", "secret-pass")
		assert.ErrorIs(t, err, ErrInactiveStaff)
	})
}

func TestRolePermissions(t *testing.T) {
	tests := []struct {
		role            Role
		manageBookings  bool
		manageHousekeep bool
	}{
		{RoleAdmin, true, true},
		{RoleManager, true, true},
		{RoleReceptionist, true, false},
		{RoleHousekeeping, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.manageBookings, tt.role.CanManageBookings())
			assert.Equal(t, tt.manageHousekeep, tt.role.CanManageHousekeeping())
		})
	}
}
