package service

import (
	"context"
	"errors"
	"testing"

	"parts-admin/internal/core/busy"
	"parts-admin/internal/features/support/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTicketProvider is a scriptable TicketProvider for testing.
type mockTicketProvider struct {
	tickets   []domain.Ticket
	listErr   error
	actionErr error

	listCalls  int
	lastStatus domain.TicketStatus
	lastText   string
}

func (m *mockTicketProvider) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.tickets, nil
}

func (m *mockTicketProvider) UpdateStatus(ctx context.Context, ticketID string, status domain.TicketStatus) error {
	m.lastStatus = status
	return m.actionErr
}

func (m *mockTicketProvider) AddMessage(ctx context.Context, ticketID string, text string) error {
	m.lastText = text
	return m.actionErr
}

// TestTicketService_ChangeStatus verifies status forwarding and the re-fetch.
func TestTicketService_ChangeStatus(t *testing.T) {
	provider := &mockTicketProvider{
		tickets: []domain.Ticket{{ID: "t1", Status: domain.TicketStatusClosed}},
	}
	svc := NewTicketService(provider, busy.NewTracker())

	tickets, err := svc.ChangeStatus(context.Background(), "t1", domain.TicketStatusClosed)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, domain.TicketStatusClosed, provider.lastStatus)
	assert.Equal(t, 1, provider.listCalls)
}

// TestTicketService_ChangeStatus_AnyDirection verifies the absence of a
// transition graph: closed tickets can reopen.
func TestTicketService_ChangeStatus_AnyDirection(t *testing.T) {
	provider := &mockTicketProvider{}
	svc := NewTicketService(provider, busy.NewTracker())

	for _, status := range domain.Statuses() {
		_, err := svc.ChangeStatus(context.Background(), "t1", status)
		require.NoError(t, err)
	}
}

// TestTicketService_ChangeStatus_Invalid verifies rejection of unknown statuses.
func TestTicketService_ChangeStatus_Invalid(t *testing.T) {
	svc := NewTicketService(&mockTicketProvider{}, busy.NewTracker())

	_, err := svc.ChangeStatus(context.Background(), "t1", domain.TicketStatus("archived"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

// TestTicketService_Reply verifies reply trimming and forwarding.
func TestTicketService_Reply(t *testing.T) {
	provider := &mockTicketProvider{}
	svc := NewTicketService(provider, busy.NewTracker())

	_, err := svc.Reply(context.Background(), "t1", "  Shipping today.  ")
	require.NoError(t, err)
	assert.Equal(t, "Shipping today.", provider.lastText)
	assert.Equal(t, 1, provider.listCalls)
}

// TestTicketService_Reply_Empty verifies that blank replies never reach the backend.
func TestTicketService_Reply_Empty(t *testing.T) {
	provider := &mockTicketProvider{}
	svc := NewTicketService(provider, busy.NewTracker())

	_, err := svc.Reply(context.Background(), "t1", "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyReply)
	assert.Empty(t, provider.lastText)
	assert.Equal(t, 0, provider.listCalls)
}

// TestTicketService_ActionFailure verifies no re-fetch and a released busy
// mark after a failed action.
func TestTicketService_ActionFailure(t *testing.T) {
	provider := &mockTicketProvider{actionErr: errors.New("backend unavailable")}
	svc := NewTicketService(provider, busy.NewTracker())

	_, err := svc.Reply(context.Background(), "t1", "hello")
	require.Error(t, err)
	assert.Equal(t, 0, provider.listCalls)

	provider.actionErr = nil
	_, err = svc.Reply(context.Background(), "t1", "hello again")
	require.NoError(t, err)
}
