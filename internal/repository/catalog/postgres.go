package catalog

import (
	"context"
	"errors"
	"io"
	"log"

	"bookstore-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = `isbn, title, author_name, genre, publisher_id, num_pages, price_cents, royalty_bp, reorder_threshold, stock, discontinued`

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

func (r *postgresRepo) ListBooks(ctx context.Context) ([]domain.Book, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *postgresRepo) GetBook(ctx context.Context, isbn int32) (*domain.Book, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE isbn = $1`, isbn)
	b, err := scanBook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepo) GetStock(ctx context.Context, isbn int32) (int32, error) {
	var stock int32
	err := r.pool.QueryRow(ctx, `SELECT stock FROM books WHERE isbn = $1`, isbn).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return stock, nil
}

func (r *postgresRepo) CreateBook(ctx context.Context, b domain.Book) error {
	const q = `
INSERT INTO books (isbn, title, author_name, genre, publisher_id, num_pages, price_cents, royalty_bp, reorder_threshold, stock, discontinued)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`
	_, err := r.pool.Exec(ctx, q,
		b.ISBN, b.Title, b.AuthorName, b.Genre, b.PublisherID,
		b.NumPages, b.PriceCents, b.RoyaltyBP, b.ReorderThreshold, b.Stock, b.Discontinued,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyExists
		}
		r.logger.Printf("catalog repo: create book isbn=%d err=%v", b.ISBN, err)
		return err
	}
	return nil
}

func (r *postgresRepo) SetDiscontinued(ctx context.Context, isbns []int32, discontinued bool) error {
	_, err := r.pool.Exec(ctx, `UPDATE books SET discontinued = $1 WHERE isbn = ANY($2)`, discontinued, isbns)
	return err
}

func (r *postgresRepo) ListPublishers(ctx context.Context) ([]domain.Publisher, error) {
	rows, err := r.pool.Query(ctx, `SELECT publisher_id, name, email, phone, bank_account FROM publishers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var publishers []domain.Publisher
	for rows.Next() {
		var p domain.Publisher
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.BankAccount); err != nil {
			return nil, err
		}
		publishers = append(publishers, p)
	}
	return publishers, rows.Err()
}

func (r *postgresRepo) CreatePublisher(ctx context.Context, p domain.Publisher) (*domain.Publisher, error) {
	const q = `
INSERT INTO publishers (name, email, phone, bank_account)
VALUES ($1, $2, $3, $4)
RETURNING publisher_id
`
	if err := r.pool.QueryRow(ctx, q, p.Name, p.Email, p.Phone, p.BankAccount).Scan(&p.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &p, nil
}

func scanBook(row pgx.Row) (domain.Book, error) {
	var b domain.Book
	err := row.Scan(
		&b.ISBN,
		&b.Title,
		&b.AuthorName,
		&b.Genre,
		&b.PublisherID,
		&b.NumPages,
		&b.PriceCents,
		&b.RoyaltyBP,
		&b.ReorderThreshold,
		&b.Stock,
		&b.Discontinued,
	)
	return b, err
}
