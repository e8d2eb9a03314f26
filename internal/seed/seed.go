package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type bookSeed struct {
	ISBN             int32
	Title            string
	AuthorName       string
	Genre            string
	Publisher        string
	NumPages         int32
	PriceCents       int64
	RoyaltyBP        int32
	ReorderThreshold int32
	Stock            int32
}

// Apply inserts demo catalog data for manual testing. It is idempotent
// via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	publishers := map[string]int32{}
	for _, name := range []string{"Orbit Press", "Meridian House", "Gaslight Books"} {
		id, err := ensurePublisher(ctx, pool, name)
		if err != nil {
			return fmt.Errorf("ensure publisher %s: %w", name, err)
		}
		publishers[name] = id
	}

	books := []bookSeed{
		{
			ISBN:             143127550,
			Title:            "The Long Meridian",
			AuthorName:       "R. Okafor",
			Genre:            "Fiction",
			Publisher:        "Meridian House",
			NumPages:         412,
			PriceCents:       1899,
			RoyaltyBP:        1200,
			ReorderThreshold: 5,
			Stock:            40,
		},
		{
			ISBN:             262033848,
			Title:            "Signals in the Dark",
			AuthorName:       "M. Castellanos",
			Genre:            "Thriller",
			Publisher:        "Gaslight Books",
			NumPages:         318,
			PriceCents:       1499,
			RoyaltyBP:        1000,
			ReorderThreshold: 3,
			Stock:            25,
		},
		{
			ISBN:             441172717,
			Title:            "Harbor of Glass",
			AuthorName:       "J. Lindqvist",
			Genre:            "Science Fiction",
			Publisher:        "Orbit Press",
			NumPages:         560,
			PriceCents:       2299,
			RoyaltyBP:        1500,
			ReorderThreshold: 8,
			Stock:            12,
		},
	}

	for _, b := range books {
		if err := upsertBook(ctx, pool, publishers[b.Publisher], b); err != nil {
			return fmt.Errorf("upsert book %d: %w", b.ISBN, err)
		}
	}

	return nil
}

func ensurePublisher(ctx context.Context, pool *pgxpool.Pool, name string) (int32, error) {
	const q = `
INSERT INTO publishers (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING publisher_id
`
	var id int32
	if err := pool.QueryRow(ctx, q, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func upsertBook(ctx context.Context, pool *pgxpool.Pool, publisherID int32, b bookSeed) error {
	const q = `
INSERT INTO books (isbn, title, author_name, genre, publisher_id, num_pages, price_cents, royalty_bp, reorder_threshold, stock)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (isbn) DO UPDATE
SET title = EXCLUDED.title,
    author_name = EXCLUDED.author_name,
    genre = EXCLUDED.genre,
    publisher_id = EXCLUDED.publisher_id,
    num_pages = EXCLUDED.num_pages,
    price_cents = EXCLUDED.price_cents,
    royalty_bp = EXCLUDED.royalty_bp,
    reorder_threshold = EXCLUDED.reorder_threshold
`
	_, err := pool.Exec(ctx, q, b.ISBN, b.Title, b.AuthorName, b.Genre, publisherID,
		b.NumPages, b.PriceCents, b.RoyaltyBP, b.ReorderThreshold, b.Stock)
	if err != nil {
		return err
	}
	return nil
}
