package adapter

import (
	"context"
	"fmt"

	"parts-admin/internal/core/storeapi"
	"parts-admin/internal/features/support/domain"
)

// StoreAPIAdapter implements the TicketProvider interface against the
// storefront backend's support endpoints.
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

// ticketList is the backend's list response envelope.
type ticketList struct {
	Tickets []domain.Ticket `json:"tickets"`
}

// ListTickets fetches all tickets from the backend.
func (a *StoreAPIAdapter) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	var out ticketList
	if err := a.client.Get(ctx, "/support/admin/all", &out); err != nil {
		return nil, err
	}
	return out.Tickets, nil
}

// statusPayload is the ticket status-set request body.
type statusPayload struct {
	Status domain.TicketStatus `json:"status"`
}

// UpdateStatus sets the ticket status.
func (a *StoreAPIAdapter) UpdateStatus(ctx context.Context, ticketID string, status domain.TicketStatus) error {
	path := fmt.Sprintf("/support/admin/%s/status", ticketID)
	return a.client.Patch(ctx, path, statusPayload{Status: status}, nil)
}

// messagePayload is the reply body.
type messagePayload struct {
	Text string `json:"text"`
}

// AddMessage appends a staff reply to the ticket thread. The message endpoint
// is the shared customer/staff one; the backend tags the sender role from the
// authenticated token.
func (a *StoreAPIAdapter) AddMessage(ctx context.Context, ticketID string, text string) error {
	path := fmt.Sprintf("/support/%s/message", ticketID)
	return a.client.Post(ctx, path, messagePayload{Text: text}, nil)
}
