package adapter

import (
	"context"
	"fmt"

	"parts-admin/internal/core/storeapi"
	"parts-admin/internal/features/orders/domain"
)

// StoreAPIAdapter implements the OrderProvider interface against the
// storefront backend's admin order endpoints.
type StoreAPIAdapter struct {
	// client is the shared backend REST client.
	client *storeapi.Client
}

// NewStoreAPIAdapter creates a new StoreAPIAdapter.
func NewStoreAPIAdapter(client *storeapi.Client) *StoreAPIAdapter {
	return &StoreAPIAdapter{
		client: client,
	}
}

// orderList is the backend's list response envelope.
type orderList struct {
	Orders []domain.Order `json:"orders"`
}

// ListOrders fetches all orders from the backend.
func (a *StoreAPIAdapter) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out orderList
	if err := a.client.Get(ctx, "/orders/admin/all", &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// statusPayload is the status-set request body.
type statusPayload struct {
	Status domain.OrderStatus `json:"status"`
	Note   string             `json:"note"`
}

// UpdateStatus issues a status-set request with an audit note.
// The response body is discarded: displayed state always comes from a re-fetch.
func (a *StoreAPIAdapter) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, note string) error {
	path := fmt.Sprintf("/orders/admin/%s/status", orderID)
	return a.client.Patch(ctx, path, statusPayload{Status: status, Note: note}, nil)
}

// Refund triggers the backend refund for the order.
func (a *StoreAPIAdapter) Refund(ctx context.Context, orderID string) error {
	path := fmt.Sprintf("/orders/admin/%s/refund", orderID)
	return a.client.Patch(ctx, path, nil, nil)
}

// decidePayload is the return/replacement decision body.
type decidePayload struct {
	Action    domain.RRAction `json:"action"`
	AdminNote string          `json:"adminNote"`
}

// DecideReturn approves or rejects a requested return/replacement.
func (a *StoreAPIAdapter) DecideReturn(ctx context.Context, orderID string, action domain.RRAction, adminNote string) error {
	path := fmt.Sprintf("/orders/admin/%s/rr/decide", orderID)
	return a.client.Patch(ctx, path, decidePayload{Action: action, AdminNote: adminNote}, nil)
}

// completePayload is the return/replacement completion body.
type completePayload struct {
	AdminNote string `json:"adminNote"`
}

// CompleteReturn completes an approved return/replacement.
func (a *StoreAPIAdapter) CompleteReturn(ctx context.Context, orderID string, adminNote string) error {
	path := fmt.Sprintf("/orders/admin/%s/rr/complete", orderID)
	return a.client.Patch(ctx, path, completePayload{AdminNote: adminNote}, nil)
}
