package auth

import (
	"net/http"

	"parts-admin/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionHandler manages the cached admin session token. Logging in against
// the storefront backend happens outside this service; the resulting bearer
// token is handed over here and attached to every proxied call.
type SessionHandler struct {
	store *TokenStore
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(store *TokenStore) *SessionHandler {
	return &SessionHandler{
		store: store,
	}
}

// sessionRequest is the body accepted by the session endpoint.
type sessionRequest struct {
	Token string `json:"token"`
}

// sessionResponse acknowledges a session change.
type sessionResponse struct {
	Message string `json:"message"`
}

// Set handles storing a fresh admin token.
// @Summary Store the admin session token
// @Accept json
// @Produce json
// @Param request body sessionRequest true "Bearer token obtained from the storefront login"
// @Success 200 {object} sessionResponse
// @Failure 400 {object} sessionResponse
// @Router /admin/session [put]
func (h *SessionHandler) Set(c *fiber.Ctx) error {
	var req sessionRequest
	if err := c.BodyParser(&req); err != nil || req.Token == "" {
		return c.Status(http.StatusBadRequest).JSON(sessionResponse{
			Message: "Token is required",
		})
	}

	if err := h.store.Set(c.Context(), req.Token); err != nil {
		logger.Get().Error("Failed to store session token", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(sessionResponse{
			Message: "Failed to store session",
		})
	}
	return c.Status(http.StatusOK).JSON(sessionResponse{
		Message: "Session stored",
	})
}

// Clear handles logout.
// @Summary Clear the admin session token
// @Produce json
// @Success 200 {object} sessionResponse
// @Router /admin/session [delete]
func (h *SessionHandler) Clear(c *fiber.Ctx) error {
	if err := h.store.Clear(c.Context()); err != nil {
		logger.Get().Error("Failed to clear session token", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(sessionResponse{
			Message: "Failed to clear session",
		})
	}
	return c.Status(http.StatusOK).JSON(sessionResponse{
		Message: "Session cleared",
	})
}
