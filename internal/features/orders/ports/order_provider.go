package ports

import (
	"context"

	"parts-admin/internal/features/orders/domain"
)

// OrderProvider defines the backend operations the order workflow depends on.
// This is a Secondary Port (Driven Port); the production implementation talks
// to the storefront backend's admin REST endpoints.
type OrderProvider interface {
	// ListOrders fetches every order visible to staff.
	ListOrders(ctx context.Context) ([]domain.Order, error)

	// UpdateStatus issues an explicit status-set request with an audit note.
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, note string) error

	// Refund triggers the backend refund for the order's payment.
	Refund(ctx context.Context, orderID string) error

	// DecideReturn approves or rejects a requested return/replacement.
	DecideReturn(ctx context.Context, orderID string, action domain.RRAction, adminNote string) error

	// CompleteReturn completes an approved return/replacement. Restocking,
	// parent refunds and replacement-order creation happen backend-side.
	CompleteReturn(ctx context.Context, orderID string, adminNote string) error
}
