package session

import (
	"context"
	"time"
)

// Session kinds. Owner sessions carry subject id 0 while the store is on
// bootstrap credentials.
const (
	KindCustomer = "customer"
	KindOwner    = "owner"
)

type Session struct {
	Token     string
	Kind      string
	SubjectID int32
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
