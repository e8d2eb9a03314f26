package order

import (
	"context"
	"time"

	"bookstore-api/internal/domain"
)

// CreateInput is a fully resolved order: stock was pre-validated and the
// address/payment snapshots already have row ids.
type CreateInput struct {
	CustomerID        int32
	ShippingAddressID int32
	PaymentInfoID     int32
	TrackingNumber    string
	Status            string
	OrderDate         time.Time
	Lines             []domain.CartLine
}

// SalesByDateRow aggregates one day of completed orders.
type SalesByDateRow struct {
	Date         time.Time `json:"date"`
	Orders       int64     `json:"orders"`
	Units        int64     `json:"units"`
	RevenueCents int64     `json:"revenueCents"`
}

// SalesByPublisherRow aggregates sold units and revenue per publisher.
type SalesByPublisherRow struct {
	PublisherID   int32  `json:"publisherId"`
	PublisherName string `json:"publisherName"`
	Units         int64  `json:"units"`
	RevenueCents  int64  `json:"revenueCents"`
}

type Repository interface {
	// Create persists the order row, its line items, the stock decrements
	// and the cart clear in one transaction. A line whose conditional
	// decrement matches no row aborts everything with
	// domain.InsufficientStockError.
	Create(ctx context.Context, in CreateInput) (int32, error)
	GetSummary(ctx context.Context, orderID int32) (*domain.OrderSummary, error)
	GetLines(ctx context.Context, orderID int32) ([]domain.OrderLine, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.OrderSummary, error)
	SalesByDate(ctx context.Context) ([]SalesByDateRow, error)
	SalesByPublisher(ctx context.Context) ([]SalesByPublisherRow, error)
}
