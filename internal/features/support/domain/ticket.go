package domain

import "time"

// TicketStatus is the state of a support ticket. All three states are freely
// interchangeable; there is no terminal ticket state.
type TicketStatus string

const (
	TicketStatusOpen    TicketStatus = "open"
	TicketStatusPending TicketStatus = "pending"
	TicketStatusClosed  TicketStatus = "closed"
)

// ticketStatuses is the fixed candidate list offered to staff.
var ticketStatuses = []TicketStatus{
	TicketStatusOpen,
	TicketStatusPending,
	TicketStatusClosed,
}

// Statuses returns the selectable ticket statuses in display order.
func Statuses() []TicketStatus {
	out := make([]TicketStatus, len(ticketStatuses))
	copy(out, ticketStatuses)
	return out
}

// ValidStatus reports whether s is one of the three ticket states.
func ValidStatus(s TicketStatus) bool {
	for _, candidate := range ticketStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// SenderRole tags who wrote a message, for display styling.
type SenderRole string

const (
	SenderRoleAdmin    SenderRole = "admin"
	SenderRoleCustomer SenderRole = "customer"
)

// Message is one entry in a ticket's append-only thread.
type Message struct {
	// SenderRole says whether staff or the customer wrote the message.
	SenderRole SenderRole `json:"senderRole"`
	// Text is the message content.
	Text string `json:"text"`
	// CreatedAt is when the message was appended.
	CreatedAt time.Time `json:"createdAt"`
}

// FromStaff reports whether the message was written by store staff.
func (m Message) FromStaff() bool {
	return m.SenderRole == SenderRoleAdmin
}

// Requester identifies the customer who opened a ticket.
type Requester struct {
	// Name is the customer's display name.
	Name string `json:"name"`
	// Email is the customer's contact email.
	Email string `json:"email"`
}

// Ticket is a customer support ticket as reported by the storefront backend.
// The thread is append-only and only ever updated via re-fetch after a
// successful send; there is no local echo.
type Ticket struct {
	// ID is the unique ticket identifier.
	ID string `json:"_id"`
	// Subject is the ticket subject line.
	Subject string `json:"subject"`
	// User identifies the customer who opened the ticket.
	User Requester `json:"userId"`
	// Status is the ticket state.
	Status TicketStatus `json:"status"`
	// Messages is the append-only message thread.
	Messages []Message `json:"messages"`
	// CreatedAt is when the ticket was opened.
	CreatedAt time.Time `json:"createdAt"`
}
