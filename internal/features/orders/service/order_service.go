package service

import (
	"context"
	"errors"
	"fmt"

	"parts-admin/internal/core/busy"
	"parts-admin/internal/features/orders/domain"
	"parts-admin/internal/features/orders/ports"
)

// ErrActionInFlight is returned when another mutating action for the same
// order has not finished yet.
var ErrActionInFlight = errors.New("another action for this order is in progress")

// ErrInvalidStatus is returned when the requested status is not in the
// selectable candidate list.
var ErrInvalidStatus = errors.New("status is not selectable")

// ErrInvalidAction is returned when the return/replacement decision is neither
// APPROVE nor REJECT.
var ErrInvalidAction = errors.New("invalid return/replacement action")

// OrderService orchestrates admin order actions: it serializes actions per
// order id, forwards transition requests to the backend and re-fetches the
// full order list after every successful mutation so callers only ever see
// server-confirmed state. It never mutates state locally and never retries.
type OrderService struct {
	// provider is the backend port for order operations.
	provider ports.OrderProvider
	// busy tracks order ids with an action in flight.
	busy *busy.Tracker
}

// NewOrderService creates a new OrderService.
func NewOrderService(provider ports.OrderProvider, tracker *busy.Tracker) *OrderService {
	return &OrderService{
		provider: provider,
		busy:     tracker,
	}
}

// ListOrders fetches the current order list.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.provider.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ChangeStatus issues an explicit status-set request. Re-selecting the current
// status is legal and goes to the backend as a no-op with its own audit note.
// On success the refreshed order list is returned.
func (s *OrderService) ChangeStatus(ctx context.Context, orderID string, status domain.OrderStatus) ([]domain.Order, error) {
	if !domain.Selectable(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	return s.mutate(ctx, orderID, func(ctx context.Context) error {
		return s.provider.UpdateStatus(ctx, orderID, status, domain.StatusNote(status))
	})
}

// Refund triggers the backend refund for the order. Whether the refund is
// currently legal is decided by the backend; the engine's CanRefund only
// drives control enabling on the last fetched snapshot.
func (s *OrderService) Refund(ctx context.Context, orderID string) ([]domain.Order, error) {
	return s.mutate(ctx, orderID, func(ctx context.Context) error {
		return s.provider.Refund(ctx, orderID)
	})
}

// DecideReturn approves or rejects a requested return/replacement, recording
// the fixed staff note for the chosen action.
func (s *OrderService) DecideReturn(ctx context.Context, orderID string, action domain.RRAction) ([]domain.Order, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAction, action)
	}

	return s.mutate(ctx, orderID, func(ctx context.Context) error {
		return s.provider.DecideReturn(ctx, orderID, action, action.AdminNote())
	})
}

// CompleteReturn completes an approved return/replacement.
func (s *OrderService) CompleteReturn(ctx context.Context, orderID string) ([]domain.Order, error) {
	return s.mutate(ctx, orderID, func(ctx context.Context) error {
		return s.provider.CompleteReturn(ctx, orderID, domain.AdminNoteCompleted)
	})
}

// mutate runs a single backend action under the order's busy mark. The mark is
// held through the post-action re-fetch, and on failure the caller's last
// fetched state stays authoritative; nothing is rolled forward.
func (s *OrderService) mutate(ctx context.Context, orderID string, action func(ctx context.Context) error) ([]domain.Order, error) {
	if !s.busy.Acquire(orderID) {
		return nil, ErrActionInFlight
	}
	defer s.busy.Release(orderID)

	if err := action(ctx); err != nil {
		return nil, err
	}

	orders, err := s.provider.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("action succeeded but refresh failed: %w", err)
	}
	return orders, nil
}
