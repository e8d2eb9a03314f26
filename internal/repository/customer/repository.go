package customer

import (
	"context"

	"bookstore-api/internal/domain"
)

// RegisterInput carries everything needed to create a customer with their
// default shipping address and payment record.
type RegisterInput struct {
	Name         string
	Email        string
	PasswordHash string
	Address      domain.AddressInput
	Payment      domain.PaymentInfoInput
}

type Repository interface {
	// Create inserts the default shipping address, the billing address,
	// the payment record and the customer row in a single transaction.
	// Registration never dedups: the rows are always brand new.
	Create(ctx context.Context, in RegisterInput) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	GetProfile(ctx context.Context, id int32) (*domain.CustomerProfile, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Delete(ctx context.Context, id int32) error
}
