package auth

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// unauthorizedResponse is the body returned when a request is not authenticated.
type unauthorizedResponse struct {
	// Message is the error description.
	Message string `json:"message"`
}

// RequireToken gates routes on the presence of a cached admin token.
// When the token is a parseable JWT with an exp claim that has passed, the
// request is also rejected so the caller redirects to login instead of
// issuing a backend call that is guaranteed to fail.
func RequireToken(store *TokenStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := store.Get(c.Context())
		if err != nil || token == "" {
			return c.Status(http.StatusUnauthorized).JSON(unauthorizedResponse{
				Message: "Authentication required",
			})
		}

		if expired(token) {
			return c.Status(http.StatusUnauthorized).JSON(unauthorizedResponse{
				Message: "Session expired",
			})
		}

		return c.Next()
	}
}

// expired reports whether token is a JWT whose exp claim has passed.
// Opaque (non-JWT) tokens are never considered expired; the backend decides.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
