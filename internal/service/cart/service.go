package cart

import (
	"context"
	"errors"

	"bookstore-api/internal/domain"
	cartrepo "bookstore-api/internal/repository/cart"
)

// Service owns per-customer carts. Stock is validated only at explicit
// quantity-set and at checkout, never on increment-by-one.
type Service struct {
	carts cartRepo
	stock stockRepo
}

type cartRepo interface {
	GetQuantity(ctx context.Context, customerID, isbn int32) (int32, error)
	InsertLine(ctx context.Context, customerID, isbn, quantity int32) error
	IncrementLine(ctx context.Context, customerID, isbn int32) error
	UpsertLine(ctx context.Context, customerID, isbn, quantity int32) error
	DeleteLine(ctx context.Context, customerID, isbn int32) error
	List(ctx context.Context, customerID int32) ([]domain.CartLine, error)
	Clear(ctx context.Context, customerID int32) error
}

type stockRepo interface {
	GetStock(ctx context.Context, isbn int32) (int32, error)
}

func New(carts cartrepo.Repository, stock stockRepo) *Service {
	return &Service{carts: carts, stock: stock}
}

// AddOne increments the line for isbn by one, creating it at quantity 1
// if absent. Two concurrent calls for the same line can race
// (read-then-write); the last write wins.
func (s *Service) AddOne(ctx context.Context, customerID, isbn int32) error {
	_, err := s.carts.GetQuantity(ctx, customerID, isbn)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return s.carts.InsertLine(ctx, customerID, isbn, 1)
		}
		return err
	}
	return s.carts.IncrementLine(ctx, customerID, isbn)
}

// SetQuantity sets the line to quantity after validating it against
// current stock with a strict less-than. Quantity 0 deletes the line. On
// a failed check the cart is left unmodified.
func (s *Service) SetQuantity(ctx context.Context, customerID, isbn, quantity int32) error {
	if quantity < 0 {
		return &domain.ValidationError{Field: "quantity", Reason: "must be non-negative"}
	}

	stock, err := s.stock.GetStock(ctx, isbn)
	if err != nil {
		return err
	}
	if quantity >= stock {
		return &domain.InsufficientStockError{ISBN: isbn}
	}

	if quantity == 0 {
		return s.carts.DeleteLine(ctx, customerID, isbn)
	}
	return s.carts.UpsertLine(ctx, customerID, isbn, quantity)
}

// GetCart returns the customer's cart lines with quantities clamped to
// >= 0, in case a negative value ever reached storage through a bypassed
// path.
func (s *Service) GetCart(ctx context.Context, customerID int32) ([]domain.CartLine, error) {
	lines, err := s.carts.List(ctx, customerID)
	if err != nil {
		return nil, err
	}
	for i := range lines {
		if lines[i].Quantity < 0 {
			lines[i].Quantity = 0
		}
	}
	return lines, nil
}

// Clear removes every line of the customer's cart.
func (s *Service) Clear(ctx context.Context, customerID int32) error {
	return s.carts.Clear(ctx, customerID)
}
