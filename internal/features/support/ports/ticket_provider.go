package ports

import (
	"context"

	"parts-admin/internal/features/support/domain"
)

// TicketProvider defines the backend operations the support workflow depends on.
// This is a Secondary Port (Driven Port).
type TicketProvider interface {
	// ListTickets fetches every ticket in the admin inbox.
	ListTickets(ctx context.Context) ([]domain.Ticket, error)

	// UpdateStatus sets the ticket status.
	UpdateStatus(ctx context.Context, ticketID string, status domain.TicketStatus) error

	// AddMessage appends a staff reply to the ticket thread.
	AddMessage(ctx context.Context, ticketID string, text string) error
}
