package cart

import (
	"context"

	"bookstore-api/internal/domain"
)

type Repository interface {
	// GetQuantity returns the stored quantity for the line, or
	// domain.ErrNotFound when no line exists.
	GetQuantity(ctx context.Context, customerID, isbn int32) (int32, error)
	InsertLine(ctx context.Context, customerID, isbn, quantity int32) error
	IncrementLine(ctx context.Context, customerID, isbn int32) error
	// UpsertLine sets the quantity as a single persisted write.
	UpsertLine(ctx context.Context, customerID, isbn, quantity int32) error
	DeleteLine(ctx context.Context, customerID, isbn int32) error
	List(ctx context.Context, customerID int32) ([]domain.CartLine, error)
	Clear(ctx context.Context, customerID int32) error
}
