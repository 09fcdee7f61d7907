package domain

import (
	"time"
)

// OrderStatus represents the current state of an order.
type OrderStatus string

const (
	// OrderStatusPlaced indicates the order has been placed but not yet confirmed.
	OrderStatusPlaced OrderStatus = "PLACED"
	// OrderStatusConfirmed indicates the order has been accepted by staff.
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	// OrderStatusShipped indicates the order has been handed to the carrier.
	OrderStatusShipped OrderStatus = "SHIPPED"
	// OrderStatusDelivered indicates the order has reached the customer.
	OrderStatusDelivered OrderStatus = "DELIVERED"
	// OrderStatusCancelled indicates the order was cancelled. Terminal.
	OrderStatusCancelled OrderStatus = "CANCELLED"
	// OrderStatusReturned indicates the order was returned after delivery. Terminal.
	OrderStatusReturned OrderStatus = "RETURNED"
	// OrderStatusReplaced indicates a replacement order superseded this one. Terminal.
	OrderStatusReplaced OrderStatus = "REPLACED"
)

// PaymentStatusPaid is the payment status required for a refund to be possible.
const PaymentStatusPaid = "PAID"

// PaymentMethodReplacement marks zero-charge payments attached to replacement
// orders; such orders are never refundable.
const PaymentMethodReplacement = "REPLACEMENT"

// Payment holds how an order was paid and where that payment stands.
type Payment struct {
	// Method is the payment method (e.g., CARD, UPI, COD, REPLACEMENT).
	Method string `json:"method"`
	// Status is the payment state (e.g., PENDING, PAID, REFUNDED).
	Status string `json:"status"`
}

// OrderItem is a line item snapshotted at order time. Snapshots are immutable:
// they price the item as sold, independent of later product price changes.
type OrderItem struct {
	// TitleSnapshot is the product title at the time the order was placed.
	TitleSnapshot string `json:"titleSnapshot"`
	// PriceSnapshot is the unit price at the time the order was placed.
	PriceSnapshot float64 `json:"priceSnapshot"`
	// Qty is the number of units ordered.
	Qty int `json:"qty"`
}

// Customer identifies the ordering customer for display.
type Customer struct {
	// Name is the customer's display name.
	Name string `json:"name"`
	// Email is the customer's contact email.
	Email string `json:"email"`
}

// ShippingAddress is the delivery address attached to an order.
type ShippingAddress struct {
	// Name is the recipient name.
	Name string `json:"name"`
	// Phone is the recipient contact number.
	Phone string `json:"phone"`
	// AddressLine1 is the primary address line.
	AddressLine1 string `json:"addressLine1"`
	// City is the delivery city.
	City string `json:"city"`
	// State is the delivery state.
	State string `json:"state"`
	// Pincode is the postal code.
	Pincode string `json:"pincode"`
}

// Order is a customer order as reported by the storefront backend. Orders are
// created and mutated exclusively by the backend; this service only fetches
// snapshots and forwards transition requests.
type Order struct {
	// ID is the unique order identifier.
	ID string `json:"_id"`
	// Status is the current order state.
	Status OrderStatus `json:"status"`
	// IsReplacement is true when this order was generated to replace another.
	IsReplacement bool `json:"isReplacement"`
	// ParentOrderID references the original order when IsReplacement is true.
	ParentOrderID string `json:"parentOrderId,omitempty"`
	// Payment holds the payment method and state.
	Payment Payment `json:"payment"`
	// TotalAmount is the order total.
	TotalAmount float64 `json:"totalAmount"`
	// Items are the line items snapshotted at order time.
	Items []OrderItem `json:"items"`
	// ReturnRequest is the attached return/replacement request, if any.
	ReturnRequest *ReturnRequest `json:"returnRequest,omitempty"`
	// User identifies the customer.
	User Customer `json:"userId"`
	// Shipping is the delivery address.
	Shipping ShippingAddress `json:"shippingAddress"`
	// CreatedAt is when the order was placed.
	CreatedAt time.Time `json:"createdAt"`
}
