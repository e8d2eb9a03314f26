package cart

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

func (r *postgresRepo) GetQuantity(ctx context.Context, customerID, isbn int32) (int32, error) {
	var quantity int32
	err := r.pool.QueryRow(ctx,
		`SELECT quantity FROM cart_lines WHERE customer_id = $1 AND isbn = $2`,
		customerID, isbn,
	).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return quantity, nil
}

func (r *postgresRepo) InsertLine(ctx context.Context, customerID, isbn, quantity int32) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO cart_lines (customer_id, isbn, quantity) VALUES ($1, $2, $3)`,
		customerID, isbn, quantity,
	)
	return err
}

func (r *postgresRepo) IncrementLine(ctx context.Context, customerID, isbn int32) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE cart_lines SET quantity = quantity + 1 WHERE customer_id = $1 AND isbn = $2`,
		customerID, isbn,
	)
	return err
}

func (r *postgresRepo) UpsertLine(ctx context.Context, customerID, isbn, quantity int32) error {
	const q = `
INSERT INTO cart_lines (customer_id, isbn, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (customer_id, isbn) DO UPDATE SET quantity = EXCLUDED.quantity
`
	_, err := r.pool.Exec(ctx, q, customerID, isbn, quantity)
	return err
}

func (r *postgresRepo) DeleteLine(ctx context.Context, customerID, isbn int32) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM cart_lines WHERE customer_id = $1 AND isbn = $2`,
		customerID, isbn,
	)
	return err
}

func (r *postgresRepo) List(ctx context.Context, customerID int32) ([]domain.CartLine, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT isbn, quantity FROM cart_lines WHERE customer_id = $1 ORDER BY isbn`,
		customerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ISBN, &line.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *postgresRepo) Clear(ctx context.Context, customerID int32) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_lines WHERE customer_id = $1`, customerID)
	return err
}
