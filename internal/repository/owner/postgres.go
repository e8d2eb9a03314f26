package owner

import (
	"context"
	"errors"
	"strings"

	"bookstore-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Owner) (*domain.Owner, error) {
	const q = `
INSERT INTO owners (name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING owner_id
`
	o.Email = strings.ToLower(o.Email)
	if err := r.pool.QueryRow(ctx, q, o.Name, o.Email, o.PasswordHash).Scan(&o.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Owner, error) {
	const q = `
SELECT owner_id, name, email, password_hash
FROM owners
WHERE lower(email) = lower($1)
LIMIT 1
`
	var o domain.Owner
	err := r.pool.QueryRow(ctx, q, email).Scan(&o.ID, &o.Name, &o.Email, &o.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Owner, error) {
	rows, err := r.pool.Query(ctx, `SELECT owner_id, name, email, password_hash FROM owners ORDER BY owner_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var owners []domain.Owner
	for rows.Next() {
		var o domain.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.Email, &o.PasswordHash); err != nil {
			return nil, err
		}
		owners = append(owners, o)
	}
	return owners, rows.Err()
}

func (r *postgresRepo) Delete(ctx context.Context, id int32) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM owners WHERE owner_id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Any(ctx context.Context) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM owners)`).Scan(&exists)
	return exists, err
}
