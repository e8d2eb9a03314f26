package order

import (
	"context"
	"errors"
	"io"
	"log"

	"bookstore-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const summaryColumns = `
    o.order_id, o.customer_id, o.tracking_number, o.order_status, o.order_date,
    ship.address_id, ship.street_address, ship.postal_code, ship.province,
    p.payment_info_id, p.name_on_card, p.expiry, p.card_number, p.billing_address_id,
    bill.address_id, bill.street_address, bill.postal_code, bill.province`

const summaryJoins = `
FROM orders o
INNER JOIN addresses ship ON o.shipping_address_id = ship.address_id
INNER JOIN payment_infos p ON o.payment_info_id = p.payment_info_id
INNER JOIN addresses bill ON p.billing_address_id = bill.address_id`

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

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (int32, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var orderID int32
	if err := tx.QueryRow(ctx, `
INSERT INTO orders (customer_id, shipping_address_id, tracking_number, order_status, order_date, payment_info_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING order_id
`, in.CustomerID, in.ShippingAddressID, in.TrackingNumber, in.Status, in.OrderDate, in.PaymentInfoID,
	).Scan(&orderID); err != nil {
		return 0, err
	}

	for _, line := range in.Lines {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_lines (order_id, isbn, quantity)
VALUES ($1, $2, $3)
`, orderID, line.ISBN, line.Quantity); err != nil {
			return 0, err
		}

		// The decrement re-checks stock atomically: the pre-validation at
		// the service layer can be stale by the time we get here.
		cmd, err := tx.Exec(ctx, `
UPDATE books SET stock = stock - $2 WHERE isbn = $1 AND stock > $2
`, line.ISBN, line.Quantity)
		if err != nil {
			return 0, err
		}
		if cmd.RowsAffected() == 0 {
			return 0, &domain.InsufficientStockError{ISBN: line.ISBN}
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_lines WHERE customer_id = $1`, in.CustomerID); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *postgresRepo) GetSummary(ctx context.Context, orderID int32) (*domain.OrderSummary, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+summaryColumns+summaryJoins+`
WHERE o.order_id = $1`, orderID)
	s, err := scanSummary(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) GetLines(ctx context.Context, orderID int32) ([]domain.OrderLine, error) {
	const q = `
SELECT
    b.isbn, b.title, b.author_name, b.genre, b.publisher_id, b.num_pages,
    b.price_cents, b.royalty_bp, b.reorder_threshold, b.stock, b.discontinued,
    ol.quantity
FROM order_lines ol
INNER JOIN books b ON ol.isbn = b.isbn
WHERE ol.order_id = $1
ORDER BY b.isbn
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var line domain.OrderLine
		b := &line.Book
		if err := rows.Scan(
			&b.ISBN, &b.Title, &b.AuthorName, &b.Genre, &b.PublisherID, &b.NumPages,
			&b.PriceCents, &b.RoyaltyBP, &b.ReorderThreshold, &b.Stock, &b.Discontinued,
			&line.Quantity,
		); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.OrderSummary, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+summaryColumns+summaryJoins+`
WHERE o.customer_id = $1
ORDER BY o.order_id DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.OrderSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *postgresRepo) SalesByDate(ctx context.Context) ([]SalesByDateRow, error) {
	const q = `
SELECT o.order_date, COUNT(DISTINCT o.order_id), COALESCE(SUM(ol.quantity), 0),
       COALESCE(SUM(ol.quantity * b.price_cents), 0)
FROM orders o
INNER JOIN order_lines ol ON o.order_id = ol.order_id
INNER JOIN books b ON ol.isbn = b.isbn
GROUP BY o.order_date
ORDER BY o.order_date
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SalesByDateRow
	for rows.Next() {
		var row SalesByDateRow
		if err := rows.Scan(&row.Date, &row.Orders, &row.Units, &row.RevenueCents); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *postgresRepo) SalesByPublisher(ctx context.Context) ([]SalesByPublisherRow, error) {
	const q = `
SELECT pub.publisher_id, pub.name, COALESCE(SUM(ol.quantity), 0),
       COALESCE(SUM(ol.quantity * b.price_cents), 0)
FROM publishers pub
INNER JOIN books b ON b.publisher_id = pub.publisher_id
INNER JOIN order_lines ol ON ol.isbn = b.isbn
GROUP BY pub.publisher_id, pub.name
ORDER BY pub.name
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SalesByPublisherRow
	for rows.Next() {
		var row SalesByPublisherRow
		if err := rows.Scan(&row.PublisherID, &row.PublisherName, &row.Units, &row.RevenueCents); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func scanSummary(row pgx.Row) (domain.OrderSummary, error) {
	var s domain.OrderSummary
	err := row.Scan(
		&s.ID,
		&s.CustomerID,
		&s.TrackingNumber,
		&s.Status,
		&s.OrderDate,
		&s.ShippingAddress.ID,
		&s.ShippingAddress.StreetAddress,
		&s.ShippingAddress.PostalCode,
		&s.ShippingAddress.Province,
		&s.Payment.ID,
		&s.Payment.NameOnCard,
		&s.Payment.Expiry,
		&s.Payment.CardNumber,
		&s.Payment.BillingAddressID,
		&s.BillingAddress.ID,
		&s.BillingAddress.StreetAddress,
		&s.BillingAddress.PostalCode,
		&s.BillingAddress.Province,
	)
	return s, err
}
