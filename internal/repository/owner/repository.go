package owner

import (
	"context"

	"bookstore-api/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, o domain.Owner) (*domain.Owner, error)
	GetByEmail(ctx context.Context, email string) (*domain.Owner, error)
	List(ctx context.Context) ([]domain.Owner, error)
	Delete(ctx context.Context, id int32) error
	// Any reports whether at least one owner account exists. The store
	// runs on bootstrap credentials until the first one is created.
	Any(ctx context.Context) (bool, error)
}
