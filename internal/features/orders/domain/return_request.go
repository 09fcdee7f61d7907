package domain

// RRType distinguishes a plain return from a replacement request.
type RRType string

const (
	RRTypeReturn      RRType = "RETURN"
	RRTypeReplacement RRType = "REPLACEMENT"
)

// RRStatus is the state of a return/replacement request.
type RRStatus string

const (
	// RRStatusNone means no active request; treated the same as an absent request.
	RRStatusNone RRStatus = "NONE"
	// RRStatusRequested means the customer filed the request and staff must decide.
	RRStatusRequested RRStatus = "REQUESTED"
	// RRStatusApproved means staff approved; completion is the only remaining action.
	RRStatusApproved RRStatus = "APPROVED"
	// RRStatusRejected means staff rejected the request. Final for the request.
	RRStatusRejected RRStatus = "REJECTED"
	// RRStatusCompleted means the backend finished restock/refund/replacement. Final.
	RRStatusCompleted RRStatus = "COMPLETED"
)

// ReturnRequest is a customer's return or replacement request attached to an order.
type ReturnRequest struct {
	// Type says whether the customer wants a return or a replacement.
	Type RRType `json:"type"`
	// Status is the request state.
	Status RRStatus `json:"status"`
	// Reason is the customer-supplied reason, optional.
	Reason string `json:"reason,omitempty"`
	// Note is a free-text customer note, optional.
	Note string `json:"note,omitempty"`
	// AdminNote is the staff note recorded with the decision, optional.
	AdminNote string `json:"adminNote,omitempty"`
}

// RRAction is a staff decision on a requested return/replacement.
type RRAction string

const (
	RRActionApprove RRAction = "APPROVE"
	RRActionReject  RRAction = "REJECT"
)

// Valid reports whether a is one of the two legal decisions.
func (a RRAction) Valid() bool {
	return a == RRActionApprove || a == RRActionReject
}

// Fixed staff notes recorded with each RR transition.
const (
	AdminNoteApproved  = "Approved by admin"
	AdminNoteRejected  = "Rejected by admin"
	AdminNoteCompleted = "Completed by admin"
)

// AdminNote returns the fixed staff note recorded with the decision.
func (a RRAction) AdminNote() string {
	if a == RRActionApprove {
		return AdminNoteApproved
	}
	return AdminNoteRejected
}
