package domain

import "fmt"

// terminalStatuses are the states an order never leaves.
var terminalStatuses = map[OrderStatus]struct{}{
	OrderStatusCancelled: {},
	OrderStatusReturned:  {},
	OrderStatusReplaced:  {},
}

// selectableStatuses is the fixed candidate list offered to staff for a
// non-terminal order. It is deliberately not derived from the current status:
// the backend accepts any of the five, including re-selecting the current
// value as an explicit no-op status-set.
var selectableStatuses = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusConfirmed,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// refundableStatuses are the order states in which a paid order may be refunded.
var refundableStatuses = map[OrderStatus]struct{}{
	OrderStatusCancelled: {},
	OrderStatusReturned:  {},
}

// IsTerminal reports whether the order has reached a state it never leaves.
// Terminal orders offer no status-change control.
func (o *Order) IsTerminal() bool {
	_, terminal := terminalStatuses[o.Status]
	return terminal
}

// SelectableStatuses returns the fixed, order-independent list of statuses
// staff may select for a non-terminal order.
func SelectableStatuses() []OrderStatus {
	out := make([]OrderStatus, len(selectableStatuses))
	copy(out, selectableStatuses)
	return out
}

// Selectable reports whether s is one of the five statuses staff may set.
func Selectable(s OrderStatus) bool {
	for _, candidate := range selectableStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// StatusNote returns the audit note recorded with a status-set request.
func StatusNote(s OrderStatus) string {
	return fmt.Sprintf("Set to %s", s)
}

// CanRefund reports whether a refund action is currently permitted.
// Replacement orders are never refundable, regardless of payment and status.
func (o *Order) CanRefund() bool {
	if o.IsReplacement {
		return false
	}
	if o.Payment.Method == PaymentMethodReplacement {
		return false
	}

	if o.Payment.Status != PaymentStatusPaid {
		return false
	}
	_, refundable := refundableStatuses[o.Status]
	return refundable
}

// RRVisible reports whether the order carries an active return/replacement
// request worth showing.
func (o *Order) RRVisible() bool {
	return o.ReturnRequest != nil && o.ReturnRequest.Status != "" && o.ReturnRequest.Status != RRStatusNone
}

// RRCanDecide reports whether the approve/reject decision is currently legal.
func (o *Order) RRCanDecide() bool {
	return o.RRVisible() && o.ReturnRequest.Status == RRStatusRequested
}

// RRCanComplete reports whether completing the request is currently legal.
// After the single successful completion call the control stays disabled
// until a re-fetch reflects the new request status.
func (o *Order) RRCanComplete() bool {
	return o.RRVisible() && o.ReturnRequest.Status == RRStatusApproved
}

// BadgeStyle classifies how a badge should be rendered.
type BadgeStyle string

const (
	BadgeStyleWarning BadgeStyle = "warning"
	BadgeStyleInfo    BadgeStyle = "info"
	BadgeStyleDanger  BadgeStyle = "danger"
	BadgeStyleSuccess BadgeStyle = "success"
)

// RRBadge is the rendered label for an order's return/replacement state.
type RRBadge struct {
	// Text is the badge label, "<type> • <status>".
	Text string `json:"text"`
	// Style is the rendering classification keyed by request status.
	Style BadgeStyle `json:"style"`
}

// Badge returns the rendered return/replacement badge, or nil when the order
// has no visible request.
func (o *Order) Badge() *RRBadge {
	if !o.RRVisible() {
		return nil
	}

	rr := o.ReturnRequest

	var style BadgeStyle
	switch rr.Status {
	case RRStatusRequested:
		style = BadgeStyleWarning
	case RRStatusApproved:
		style = BadgeStyleInfo
	case RRStatusRejected:
		style = BadgeStyleDanger
	default:
		style = BadgeStyleSuccess
	}

	return &RRBadge{
		Text:  fmt.Sprintf("%s • %s", rr.Type, rr.Status),
		Style: style,
	}
}

// Actions is the set of decisions the engine computes for one order snapshot.
// The presentation layer enables and disables controls from this block instead
// of re-deriving the rules.
type Actions struct {
	// Terminal is true when the order offers no status-change control.
	Terminal bool `json:"terminal"`
	// NextStatuses is the candidate status list, empty for terminal orders.
	NextStatuses []OrderStatus `json:"nextStatuses,omitempty"`
	// CanRefund is true when the refund control is enabled.
	CanRefund bool `json:"canRefund"`
	// RRVisible is true when the return/replacement block is shown.
	RRVisible bool `json:"rrVisible"`
	// CanDecideRR is true when approve/reject are enabled.
	CanDecideRR bool `json:"canDecideRR"`
	// CanCompleteRR is true when completion is enabled.
	CanCompleteRR bool `json:"canCompleteRR"`
}

// Decide computes the full action set for the order snapshot.
func (o *Order) Decide() Actions {
	actions := Actions{
		Terminal:      o.IsTerminal(),
		CanRefund:     o.CanRefund(),
		RRVisible:     o.RRVisible(),
		CanDecideRR:   o.RRCanDecide(),
		CanCompleteRR: o.RRCanComplete(),
	}
	if !actions.Terminal {
		actions.NextStatuses = SelectableStatuses()
	}
	return actions
}
