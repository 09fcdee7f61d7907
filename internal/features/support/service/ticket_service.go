package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"parts-admin/internal/core/busy"
	"parts-admin/internal/features/support/domain"
	"parts-admin/internal/features/support/ports"
)

// ErrActionInFlight is returned when another mutating action for the same
// ticket has not finished yet.
var ErrActionInFlight = errors.New("another action for this ticket is in progress")

// ErrInvalidStatus is returned for statuses outside open/pending/closed.
var ErrInvalidStatus = errors.New("invalid ticket status")

// ErrEmptyReply is returned when the reply text is blank.
var ErrEmptyReply = errors.New("reply text must not be empty")

// TicketService orchestrates the admin support inbox. Like the order workflow,
// every successful mutation is followed by a full inbox re-fetch; the thread
// never receives a local echo of a sent reply.
type TicketService struct {
	// provider is the backend port for ticket operations.
	provider ports.TicketProvider
	// busy tracks ticket ids with an action in flight.
	busy *busy.Tracker
}

// NewTicketService creates a new TicketService.
func NewTicketService(provider ports.TicketProvider, tracker *busy.Tracker) *TicketService {
	return &TicketService{
		provider: provider,
		busy:     tracker,
	}
}

// ListTickets fetches the current inbox.
func (s *TicketService) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.provider.ListTickets(ctx)
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// ChangeStatus sets the ticket status. All three states are freely
// interchangeable; only unknown values are rejected.
func (s *TicketService) ChangeStatus(ctx context.Context, ticketID string, status domain.TicketStatus) ([]domain.Ticket, error) {
	if !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	return s.mutate(ctx, ticketID, func(ctx context.Context) error {
		return s.provider.UpdateStatus(ctx, ticketID, status)
	})
}

// Reply appends a staff message to the ticket thread.
func (s *TicketService) Reply(ctx context.Context, ticketID string, text string) ([]domain.Ticket, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyReply
	}

	return s.mutate(ctx, ticketID, func(ctx context.Context) error {
		return s.provider.AddMessage(ctx, ticketID, text)
	})
}

// mutate runs a single backend action under the ticket's busy mark and
// re-fetches the inbox on success.
func (s *TicketService) mutate(ctx context.Context, ticketID string, action func(ctx context.Context) error) ([]domain.Ticket, error) {
	if !s.busy.Acquire(ticketID) {
		return nil, ErrActionInFlight
	}
	defer s.busy.Release(ticketID)

	if err := action(ctx); err != nil {
		return nil, err
	}

	tickets, err := s.provider.ListTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("action succeeded but refresh failed: %w", err)
	}
	return tickets, nil
}
