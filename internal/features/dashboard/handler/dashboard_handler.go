package handler

import (
	"net/http"

	"parts-admin/internal/core/logger"
	"parts-admin/internal/core/storeapi"
	"parts-admin/internal/features/dashboard/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardHandler handles HTTP requests for the admin landing page.
type DashboardHandler struct {
	// service is the DashboardService instance.
	service *service.DashboardService
}

// NewDashboardHandler creates a new instance of DashboardHandler.
func NewDashboardHandler(s *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: s,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// Summary handles the request for the dashboard counters.
// @Summary Dashboard counters
// @Produce json
// @Success 200 {object} domain.Summary
// @Failure 502 {object} ErrorResponse
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.Context())
	if err != nil {
		logger.Get().Error("Dashboard summary failed",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		msg := storeapi.UserMessage(err, "Failed to load dashboard")
		if storeapi.IsUnauthorized(err) {
			msg = "Session is no longer valid"
		}
		return c.Status(storeapi.HTTPStatus(err)).JSON(ErrorResponse{
			Message: msg,
			RayID:   rayID(c),
		})
	}
	return c.Status(http.StatusOK).JSON(summary)
}

// rayID extracts the request id set by the requestid middleware.
func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}
