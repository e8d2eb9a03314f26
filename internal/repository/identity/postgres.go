package identity

import (
	"context"
	"errors"

	"bookstore-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) FindAddress(ctx context.Context, in domain.AddressInput) (int32, error) {
	const q = `
SELECT address_id FROM addresses
WHERE street_address = $1 AND postal_code = $2 AND province = $3
LIMIT 1
`
	var id int32
	err := r.pool.QueryRow(ctx, q, in.StreetAddress, in.PostalCode, in.Province).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *postgresRepo) InsertAddress(ctx context.Context, in domain.AddressInput) (int32, error) {
	const q = `
INSERT INTO addresses (street_address, postal_code, province)
VALUES ($1, $2, $3)
RETURNING address_id
`
	var id int32
	if err := r.pool.QueryRow(ctx, q, in.StreetAddress, in.PostalCode, in.Province).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *postgresRepo) FindPaymentInfo(ctx context.Context, in domain.PaymentInfoInput, billingAddressID int32) (int32, error) {
	const q = `
SELECT payment_info_id FROM payment_infos
WHERE name_on_card = $1 AND expiry = $2 AND card_number = $3 AND cvv = $4 AND billing_address_id = $5
LIMIT 1
`
	var id int32
	err := r.pool.QueryRow(ctx, q,
		in.NameOnCard, in.Expiry.String(), in.CardNumber, in.CVV, billingAddressID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *postgresRepo) InsertPaymentInfo(ctx context.Context, in domain.PaymentInfoInput, billingAddressID int32) (int32, error) {
	const q = `
INSERT INTO payment_infos (name_on_card, expiry, card_number, cvv, billing_address_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING payment_info_id
`
	var id int32
	err := r.pool.QueryRow(ctx, q,
		in.NameOnCard, in.Expiry.String(), in.CardNumber, in.CVV, billingAddressID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
