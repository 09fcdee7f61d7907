package handler

import (
	"errors"
	"net/http"

	"parts-admin/internal/core/logger"
	"parts-admin/internal/core/storeapi"
	"parts-admin/internal/features/support/domain"
	"parts-admin/internal/features/support/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TicketHandler handles HTTP requests for the admin support inbox.
type TicketHandler struct {
	// service is the TicketService instance.
	service *service.TicketService
}

// NewTicketHandler creates a new instance of TicketHandler.
func NewTicketHandler(s *service.TicketService) *TicketHandler {
	return &TicketHandler{
		service: s,
	}
}

// TicketListResponse is the inbox returned by every support endpoint.
type TicketListResponse struct {
	// Tickets is the ticket list.
	Tickets []domain.Ticket `json:"tickets"`
	// Total is the number of tickets.
	Total int `json:"total"`
	// Statuses is the selectable status list for the status control.
	Statuses []domain.TicketStatus `json:"statuses"`
	// Message is a human-readable notice for the completed action, if any.
	Message string `json:"message,omitempty"`
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// statusRequest is the body accepted by the ticket status endpoint.
type statusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// replyRequest is the body accepted by the reply endpoint.
type replyRequest struct {
	Text string `json:"text"`
}

// List handles the request to fetch the support inbox.
// @Summary List support tickets
// @Produce json
// @Success 200 {object} TicketListResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/tickets [get]
func (h *TicketHandler) List(c *fiber.Ctx) error {
	tickets, err := h.service.ListTickets(c.Context())
	if err != nil {
		return h.fail(c, err, "Failed to load tickets")
	}
	return c.Status(http.StatusOK).JSON(response(tickets, ""))
}

// ChangeStatus handles a ticket status change.
// @Summary Change ticket status
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param request body statusRequest true "Target status (open, pending, closed)"
// @Success 200 {object} TicketListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/tickets/{id}/status [patch]
func (h *TicketHandler) ChangeStatus(c *fiber.Ctx) error {
	ticketID := c.Params("id")

	var req statusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Status is required",
			RayID:   rayID(c),
		})
	}

	tickets, err := h.service.ChangeStatus(c.Context(), ticketID, req.Status)
	if err != nil {
		return h.fail(c, err, "Failed to update status")
	}
	return c.Status(http.StatusOK).JSON(response(tickets, "Ticket status updated"))
}

// Reply handles appending a staff reply to a ticket thread.
// @Summary Reply to a ticket
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param request body replyRequest true "Reply text"
// @Success 200 {object} TicketListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/tickets/{id}/reply [post]
func (h *TicketHandler) Reply(c *fiber.Ctx) error {
	ticketID := c.Params("id")

	var req replyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Reply text is required",
			RayID:   rayID(c),
		})
	}

	tickets, err := h.service.Reply(c.Context(), ticketID, req.Text)
	if err != nil {
		return h.fail(c, err, "Failed to send reply")
	}
	return c.Status(http.StatusOK).JSON(response(tickets, "Reply sent"))
}

// fail maps a service error to an HTTP response.
func (h *TicketHandler) fail(c *fiber.Ctx, err error, fallback string) error {
	logger.Get().Error("Ticket action failed",
		zap.String("ticket_id", c.Params("id")),
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	)

	status := storeapi.HTTPStatus(err)
	msg := storeapi.UserMessage(err, fallback)

	switch {
	case storeapi.IsUnauthorized(err):
		msg = "Session is no longer valid"
	case errors.Is(err, service.ErrActionInFlight):
		status = http.StatusConflict
		msg = "Another action for this ticket is in progress"
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrEmptyReply):
		status = http.StatusBadRequest
		msg = err.Error()
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}

// response assembles the inbox payload.
func response(tickets []domain.Ticket, message string) TicketListResponse {
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return TicketListResponse{
		Tickets:  tickets,
		Total:    len(tickets),
		Statuses: domain.Statuses(),
		Message:  message,
	}
}

// rayID extracts the request id set by the requestid middleware.
func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}
