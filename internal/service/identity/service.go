package identity

import (
	"context"
	"errors"

	"bookstore-api/internal/domain"
	identityrepo "bookstore-api/internal/repository/identity"
)

// Service resolves address and payment-info values to stored row ids,
// reusing an existing row on an exact content match and inserting
// otherwise. The find-then-insert sequence is not atomic: concurrent
// resolution of the same new value can create duplicate rows, which is
// tolerated (the rows are immutable value snapshots).
type Service struct {
	repo identityRepo
}

type identityRepo interface {
	FindAddress(ctx context.Context, in domain.AddressInput) (int32, error)
	InsertAddress(ctx context.Context, in domain.AddressInput) (int32, error)
	FindPaymentInfo(ctx context.Context, in domain.PaymentInfoInput, billingAddressID int32) (int32, error)
	InsertPaymentInfo(ctx context.Context, in domain.PaymentInfoInput, billingAddressID int32) (int32, error)
}

func New(repo identityrepo.Repository) *Service {
	return &Service{repo: repo}
}

// ResolveAddress returns the id of an address row exactly matching in,
// inserting one if none exists.
func (s *Service) ResolveAddress(ctx context.Context, in domain.AddressInput) (int32, error) {
	id, err := s.repo.FindAddress(ctx, in)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return 0, err
	}
	return s.repo.InsertAddress(ctx, in)
}

// ResolvePaymentInfo resolves the billing address first (possibly
// creating it), then matches the payment record on every field including
// the resolved billing address id.
func (s *Service) ResolvePaymentInfo(ctx context.Context, in domain.PaymentInfoInput) (int32, error) {
	billingID, err := s.ResolveAddress(ctx, in.BillingAddress)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.FindPaymentInfo(ctx, in, billingID)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return 0, err
	}
	return s.repo.InsertPaymentInfo(ctx, in, billingID)
}
