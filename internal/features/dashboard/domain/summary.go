package domain

// Summary is the set of counters shown on the admin landing page.
type Summary struct {
	// TotalOrders is the number of orders ever placed.
	TotalOrders int `json:"totalOrders"`
	// PendingReturns is the number of return or replacement requests
	// awaiting an admin decision.
	PendingReturns int `json:"pendingReturns"`
	// TotalProducts is the number of catalog products.
	TotalProducts int `json:"totalProducts"`
	// LowStock is the number of sellable products at or below the low
	// stock threshold.
	LowStock int `json:"lowStock"`
	// OpenTickets is the number of support tickets in the open state.
	OpenTickets int `json:"openTickets"`
}
