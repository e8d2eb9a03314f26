package identity

import (
	"context"

	"bookstore-api/internal/domain"
)

// Repository stores address and payment-info value records. Find methods
// do exact content matches and return domain.ErrNotFound on a miss;
// Insert methods create a row unconditionally.
type Repository interface {
	FindAddress(ctx context.Context, in domain.AddressInput) (int32, error)
	InsertAddress(ctx context.Context, in domain.AddressInput) (int32, error)
	FindPaymentInfo(ctx context.Context, in domain.PaymentInfoInput, billingAddressID int32) (int32, error)
	InsertPaymentInfo(ctx context.Context, in domain.PaymentInfoInput, billingAddressID int32) (int32, error)
}
