package report

import (
	"context"

	orderrepo "bookstore-api/internal/repository/order"
)

// Service exposes the owner sales reports as plain aggregates; rendering
// is left to clients.
type Service struct {
	orders reportRepo
}

type reportRepo interface {
	SalesByDate(ctx context.Context) ([]orderrepo.SalesByDateRow, error)
	SalesByPublisher(ctx context.Context) ([]orderrepo.SalesByPublisherRow, error)
}

func New(orders orderrepo.Repository) *Service {
	return &Service{orders: orders}
}

func (s *Service) SalesByDate(ctx context.Context) ([]orderrepo.SalesByDateRow, error) {
	return s.orders.SalesByDate(ctx)
}

func (s *Service) SalesByPublisher(ctx context.Context) ([]orderrepo.SalesByPublisherRow, error) {
	return s.orders.SalesByPublisher(ctx)
}
