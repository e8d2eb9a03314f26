package customer

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"bookstore-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `customer_id, name, email, password_hash, default_shipping_address_id, default_payment_info_id`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, in RegisterInput) (*domain.Customer, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const insertAddress = `
INSERT INTO addresses (street_address, postal_code, province)
VALUES ($1, $2, $3)
RETURNING address_id
`
	var shippingID int32
	if err := tx.QueryRow(ctx, insertAddress,
		in.Address.StreetAddress, in.Address.PostalCode, in.Address.Province,
	).Scan(&shippingID); err != nil {
		return nil, err
	}

	var billingID int32
	if err := tx.QueryRow(ctx, insertAddress,
		in.Payment.BillingAddress.StreetAddress, in.Payment.BillingAddress.PostalCode, in.Payment.BillingAddress.Province,
	).Scan(&billingID); err != nil {
		return nil, err
	}

	var paymentID int32
	if err := tx.QueryRow(ctx, `
INSERT INTO payment_infos (name_on_card, expiry, card_number, cvv, billing_address_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING payment_info_id
`, in.Payment.NameOnCard, in.Payment.Expiry.String(), in.Payment.CardNumber, in.Payment.CVV, billingID,
	).Scan(&paymentID); err != nil {
		return nil, err
	}

	c := domain.Customer{
		Name:                     in.Name,
		Email:                    strings.ToLower(in.Email),
		PasswordHash:             in.PasswordHash,
		DefaultShippingAddressID: shippingID,
		DefaultPaymentInfoID:     paymentID,
	}
	if err := tx.QueryRow(ctx, `
INSERT INTO customers (name, email, password_hash, default_shipping_address_id, default_payment_info_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING customer_id
`, c.Name, c.Email, c.PasswordHash, c.DefaultShippingAddressID, c.DefaultPaymentInfoID,
	).Scan(&c.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const q = `
SELECT ` + customerColumns + `
FROM customers
WHERE lower(email) = lower($1)
LIMIT 1
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	const q = `
SELECT ` + customerColumns + `
FROM customers
WHERE customer_id = $1
LIMIT 1
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetProfile(ctx context.Context, id int32) (*domain.CustomerProfile, error) {
	const q = `
SELECT
    c.customer_id, c.name, c.email, c.default_shipping_address_id, c.default_payment_info_id,
    ship.address_id, ship.street_address, ship.postal_code, ship.province,
    p.payment_info_id, p.name_on_card, p.expiry, p.card_number, p.billing_address_id,
    bill.address_id, bill.street_address, bill.postal_code, bill.province
FROM customers c
INNER JOIN addresses ship ON c.default_shipping_address_id = ship.address_id
INNER JOIN payment_infos p ON c.default_payment_info_id = p.payment_info_id
INNER JOIN addresses bill ON p.billing_address_id = bill.address_id
WHERE c.customer_id = $1
`
	var prof domain.CustomerProfile
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&prof.Customer.ID,
		&prof.Customer.Name,
		&prof.Customer.Email,
		&prof.Customer.DefaultShippingAddressID,
		&prof.Customer.DefaultPaymentInfoID,
		&prof.ShippingAddress.ID,
		&prof.ShippingAddress.StreetAddress,
		&prof.ShippingAddress.PostalCode,
		&prof.ShippingAddress.Province,
		&prof.Payment.ID,
		&prof.Payment.NameOnCard,
		&prof.Payment.Expiry,
		&prof.Payment.CardNumber,
		&prof.Payment.BillingAddressID,
		&prof.BillingAddress.ID,
		&prof.BillingAddress.StreetAddress,
		&prof.BillingAddress.PostalCode,
		&prof.BillingAddress.Province,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &prof, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY customer_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.DefaultShippingAddressID, &c.DefaultPaymentInfoID); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *postgresRepo) Delete(ctx context.Context, id int32) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.DefaultShippingAddressID, &c.DefaultPaymentInfoID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("customer repo: scan error=%v", err)
		return nil, err
	}
	return &c, nil
}
