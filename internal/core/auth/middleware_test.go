package auth

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedApp(t *testing.T, store *TokenStore) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(RequireToken(store))
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func signedJWT(t *testing.T, exp time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

// TestRequireToken_NoToken verifies that requests without a cached token get 401.
func TestRequireToken_NoToken(t *testing.T) {
	store := newTestStore(t)
	app := newGuardedApp(t, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// TestRequireToken_WithToken verifies that a cached token lets requests through.
func TestRequireToken_WithToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set(context.Background(), "opaque-admin-token"))

	app := newGuardedApp(t, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// TestRequireToken_ValidJWT verifies that an unexpired JWT is accepted.
func TestRequireToken_ValidJWT(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set(context.Background(), signedJWT(t, time.Now().Add(time.Hour))))

	app := newGuardedApp(t, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// TestRequireToken_ExpiredJWT verifies that an expired JWT is rejected.
func TestRequireToken_ExpiredJWT(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set(context.Background(), signedJWT(t, time.Now().Add(-time.Hour))))

	app := newGuardedApp(t, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
