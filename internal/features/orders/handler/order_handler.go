package handler

import (
	"errors"
	"net/http"

	"parts-admin/internal/core/logger"
	"parts-admin/internal/core/storeapi"
	"parts-admin/internal/features/orders/domain"
	"parts-admin/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for the admin order workflow.
type OrderHandler struct {
	// service is the OrderService instance.
	service *service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s *service.OrderService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// OrderView is one order decorated with the decisions the frontend needs to
// enable or disable its controls.
type OrderView struct {
	domain.Order
	// Actions is the computed action set for this snapshot.
	Actions domain.Actions `json:"actions"`
	// Badge is the return/replacement badge, absent when nothing is visible.
	Badge *domain.RRBadge `json:"rrBadge,omitempty"`
}

// OrderListResponse is the decorated order list returned by every order endpoint.
type OrderListResponse struct {
	// Orders is the decorated order list.
	Orders []OrderView `json:"orders"`
	// Total is the number of orders.
	Total int `json:"total"`
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

// statusRequest is the body accepted by the status-change endpoint.
type statusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// decideRequest is the body accepted by the RR decision endpoint.
type decideRequest struct {
	Action domain.RRAction `json:"action"`
}

// List handles the request to fetch all orders with their action decisions.
// @Summary List all orders
// @Description Fetch every order with computed action gating and RR badges.
// @Produce json
// @Success 200 {object} OrderListResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(c.Context())
	if err != nil {
		return h.fail(c, err, "Failed to load orders")
	}
	return c.Status(http.StatusOK).JSON(decorate(orders, ""))
}

// ChangeStatus handles an explicit status-set request for one order.
// @Summary Change order status
// @Description Set one of the five selectable statuses; re-selecting the current value is a legal no-op.
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body statusRequest true "Target status"
// @Success 200 {object} OrderListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var req statusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Status is required",
			RayID:   rayID(c),
		})
	}

	orders, err := h.service.ChangeStatus(c.Context(), orderID, req.Status)
	if err != nil {
		return h.fail(c, err, "Failed to update status")
	}
	return c.Status(http.StatusOK).JSON(decorate(orders, "Order status updated"))
}

// Refund handles the refund request for one order.
// @Summary Refund an order
// @Description Trigger the backend refund. Allowed only for paid, non-replacement orders in CANCELLED/RETURNED.
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderListResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/orders/{id}/refund [post]
func (h *OrderHandler) Refund(c *fiber.Ctx) error {
	orders, err := h.service.Refund(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Failed to refund")
	}
	return c.Status(http.StatusOK).JSON(decorate(orders, "Refund processed"))
}

// DecideRR handles the approve/reject decision on a return/replacement request.
// @Summary Decide a return/replacement request
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body decideRequest true "APPROVE or REJECT"
// @Success 200 {object} OrderListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/orders/{id}/rr/decide [post]
func (h *OrderHandler) DecideRR(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var req decideRequest
	if err := c.BodyParser(&req); err != nil || req.Action == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Action is required",
			RayID:   rayID(c),
		})
	}

	orders, err := h.service.DecideReturn(c.Context(), orderID, req.Action)
	if err != nil {
		return h.fail(c, err, "Failed to decide RR")
	}

	notice := "RR approved"
	if req.Action == domain.RRActionReject {
		notice = "RR rejected"
	}
	return c.Status(http.StatusOK).JSON(decorate(orders, notice))
}

// CompleteRR handles completion of an approved return/replacement request.
// @Summary Complete a return/replacement request
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderListResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/orders/{id}/rr/complete [post]
func (h *OrderHandler) CompleteRR(c *fiber.Ctx) error {
	orders, err := h.service.CompleteReturn(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Failed to complete RR")
	}
	return c.Status(http.StatusOK).JSON(decorate(orders, "RR completed"))
}

// fail maps a service error to an HTTP response. Backend-supplied messages are
// preferred; fallback covers transport failures and empty error bodies.
func (h *OrderHandler) fail(c *fiber.Ctx, err error, fallback string) error {
	logger.Get().Error("Order action failed",
		zap.String("order_id", c.Params("id")),
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
		msg = "Another action for this order is in progress"
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrInvalidAction):
		status = http.StatusBadRequest
		msg = err.Error()
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}

// decorate attaches engine decisions and badges to each fetched order.
func decorate(orders []domain.Order, message string) OrderListResponse {
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		o := orders[i]
		views = append(views, OrderView{
			Order:   o,
			Actions: o.Decide(),
			Badge:   o.Badge(),
		})
	}
	return OrderListResponse{
		Orders:  views,
		Total:   len(views),
		Message: message,
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
