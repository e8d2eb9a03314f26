package catalog

import (
	"context"

	"bookstore-api/internal/domain"
)

type Repository interface {
	ListBooks(ctx context.Context) ([]domain.Book, error)
	GetBook(ctx context.Context, isbn int32) (*domain.Book, error)
	GetStock(ctx context.Context, isbn int32) (int32, error)
	CreateBook(ctx context.Context, b domain.Book) error
	SetDiscontinued(ctx context.Context, isbns []int32, discontinued bool) error
	ListPublishers(ctx context.Context) ([]domain.Publisher, error)
	CreatePublisher(ctx context.Context, p domain.Publisher) (*domain.Publisher, error)
}
