package model

import "time"

// Order status values.  Unlike the predecessor system, transitions are
// guarded by a table: completed and cancelled are terminal, everything
// else moves forward or cancels.
const (
	OrderPending    = "pending"
	OrderApproved   = "approved"
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

// Payment status values carried on the order.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// TaxRate is the flat rate applied to every order subtotal.
const TaxRate = 0.10

var orderTransitions = map[string][]string{
	OrderPending:    {OrderApproved, OrderCancelled},
	OrderApproved:   {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderCompleted, OrderCancelled},
	OrderCompleted:  {},
	OrderCancelled:  {},
}

// OrderCanTransition reports whether an order may move between the two
// statuses.  Re-entering the current status is not a transition.
func OrderCanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderItem is a single priced line inside an order.  The package name and
// unit price are denormalized at order time so later package edits do not
// rewrite history.
type OrderItem struct {
	PackageID   uint64         `json:"package_id"`
	PackageName string         `json:"package_name"`
	Quantity    int            `json:"quantity"`
	UnitPrice   float64        `json:"unit_price"`
	Total       float64        `json:"total"`
	Options     map[string]any `json:"options"`
}

// Order groups the packages a client purchased for a session.
// Total always equals Subtotal + Tax, and Tax is Subtotal times TaxRate.
// Once PaymentStatus becomes paid the order status is moved to approved.
//
// Fields:
//  ID              – primary identifier.
//  SessionID       – session the order belongs to.
//  PhotographerID  – owning photographer (denormalized from the session).
//  ClientName      – client name at order time.
//  ClientEmail     – client email at order time.
//  OrderType       – selection, extra_photos or print_package.
//  Items           – ordered line items.
//  Subtotal        – Σ unit price × quantity.
//  Tax             – Subtotal × TaxRate.
//  Total           – Subtotal + Tax.
//  Status          – order lifecycle status.
//  PaymentStatus   – pending, paid, failed or refunded.
//  DeliveryMethod  – download, physical or both.
//  DeliveryAddress – free-form address for physical delivery.
//  Notes           – client notes.
//  Deadline        – fulfilment deadline set at creation.
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type Order struct {
	ID              uint64         `json:"id"`
	SessionID       uint64         `json:"session_id"`
	PhotographerID  uint64         `json:"photographer_id"`
	ClientName      string         `json:"client_name"`
	ClientEmail     string         `json:"client_email"`
	OrderType       string         `json:"order_type"`
	Items           []OrderItem    `json:"items"`
	Subtotal        float64        `json:"subtotal"`
	Tax             float64        `json:"tax"`
	Total           float64        `json:"total"`
	Status          string         `json:"status"`
	PaymentStatus   string         `json:"payment_status"`
	DeliveryMethod  string         `json:"delivery_method"`
	DeliveryAddress map[string]any `json:"delivery_address,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	Deadline        time.Time      `json:"deadline"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
