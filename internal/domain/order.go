package domain

import "time"

// Order statuses. Only StatusPending is written by order placement;
// nothing in the API mutates a status afterwards.
const (
	StatusPending = "PR"
)

// OrderSummary is an order row with its address and payment snapshots
// resolved but without line items.
type OrderSummary struct {
	ID              int32       `json:"id"`
	CustomerID      int32       `json:"customerId"`
	ShippingAddress Address     `json:"shippingAddress"`
	TrackingNumber  string      `json:"trackingNumber"`
	Status          string      `json:"status"`
	OrderDate       time.Time   `json:"orderDate"`
	Payment         PaymentInfo `json:"payment"`
	BillingAddress  Address     `json:"billingAddress"`
}

// OrderLine joins a purchased book to its ordered quantity.
type OrderLine struct {
	Book     Book  `json:"book"`
	Quantity int32 `json:"quantity"`
}

// Order is a summary plus its line items.
type Order struct {
	OrderSummary
	Lines []OrderLine `json:"lines"`
}
