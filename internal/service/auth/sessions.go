package auth

import (
	"context"
	"errors"
	"time"

	"bookstore-api/internal/domain"
	sessionrepo "bookstore-api/internal/repository/session"
	"github.com/google/uuid"
)

// ErrInvalidSession covers unknown and expired tokens alike.
var ErrInvalidSession = errors.New("invalid session")

// Manager issues and validates opaque session tokens. Core services never
// see tokens; they receive the resolved subject id.
type Manager struct {
	repo sessionRepo
	ttl  time.Duration
	now  func() time.Time
}

type sessionRepo interface {
	Create(ctx context.Context, s sessionrepo.Session) error
	Get(ctx context.Context, token string) (*sessionrepo.Session, error)
	Delete(ctx context.Context, token string) error
}

func NewManager(repo sessionrepo.Repository, ttl time.Duration) *Manager {
	return &Manager{repo: repo, ttl: ttl, now: time.Now}
}

// Issue creates a session of the given kind and returns its token.
func (m *Manager) Issue(ctx context.Context, kind string, subjectID int32) (string, error) {
	token := uuid.NewString()
	err := m.repo.Create(ctx, sessionrepo.Session{
		Token:     token,
		Kind:      kind,
		SubjectID: subjectID,
		ExpiresAt: m.now().Add(m.ttl),
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// Lookup resolves a token to its session, deleting it when expired.
func (m *Manager) Lookup(ctx context.Context, token string) (*sessionrepo.Session, error) {
	s, err := m.repo.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	if m.now().After(s.ExpiresAt) {
		_ = m.repo.Delete(ctx, token)
		return nil, ErrInvalidSession
	}
	return s, nil
}

// Revoke deletes the session. Revoking an unknown token is not an error.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if err := m.repo.Delete(ctx, token); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}
