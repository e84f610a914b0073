package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferndale-labs/hotel-management-backend/internal/db"
)

// TestContainerBoot wires the full application against a real database
// and checks the router comes up. Set TEST_DB_DSN to run it.
func TestContainerBoot(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	container, err := NewContainer(Config{
		DBPool:      pool,
		JWTSecret:   "test-secret",
		JWTTTL:      time.Minute,
		BcryptCost:  4,
		StoragePath: t.TempDir(),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	container.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// TestProtectedRoutesRequireAuth exercises the auth middleware without a
// database: requests with no token must be rejected before any handler
// or repository runs.
func TestProtectedRoutesRequireAuth(t *testing.T) {
	container, err := NewContainer(Config{
		JWTSecret:   "test-secret",
		JWTTTL:      time.Minute,
		BcryptCost:  4,
		StoragePath: t.TempDir(),
	})
	require.NoError(t, err)

	paths := []string{
		"/v1/bookings",
		"/v1/rooms",
		"/v1/guests",
		"/v1/staff",
		"/v1/feedback",
		"/v1/me",
	}

	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		container.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
