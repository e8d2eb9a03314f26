package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookstore-api/internal/domain"
	sessionrepo "bookstore-api/internal/repository/session"
)

type memorySessionRepo struct {
	sessions map[string]sessionrepo.Session
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{sessions: make(map[string]sessionrepo.Session)}
}

func (r *memorySessionRepo) Create(_ context.Context, s sessionrepo.Session) error {
	if _, exists := r.sessions[s.Token]; exists {
		return domain.ErrAlreadyExists
	}
	r.sessions[s.Token] = s
	return nil
}

func (r *memorySessionRepo) Get(_ context.Context, token string) (*sessionrepo.Session, error) {
	s, ok := r.sessions[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := s
	return &clone, nil
}

func (r *memorySessionRepo) Delete(_ context.Context, token string) error {
	if _, ok := r.sessions[token]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sessions, token)
	return nil
}

func (r *memorySessionRepo) DeleteExpired(_ context.Context) (int64, error) {
	return 0, nil
}

func TestIssueAndLookup(t *testing.T) {
	repo := newMemorySessionRepo()
	mgr := NewManager(repo, 30*time.Minute)

	token, err := mgr.Issue(context.Background(), sessionrepo.KindCustomer, 42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatalf("empty token")
	}

	s, err := mgr.Lookup(context.Background(), token)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if s.Kind != sessionrepo.KindCustomer || s.SubjectID != 42 {
		t.Fatalf("unexpected session %+v", s)
	}
}

func TestLookup_UnknownToken(t *testing.T) {
	mgr := NewManager(newMemorySessionRepo(), 30*time.Minute)

	_, err := mgr.Lookup(context.Background(), "no-such-token")
	if !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestLookup_ExpiredTokenIsDeleted(t *testing.T) {
	repo := newMemorySessionRepo()
	mgr := NewManager(repo, 30*time.Minute)

	token, err := mgr.Issue(context.Background(), sessionrepo.KindOwner, 1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	mgr.now = func() time.Time { return time.Now().Add(time.Hour) }

	if _, err := mgr.Lookup(context.Background(), token); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
	if _, ok := repo.sessions[token]; ok {
		t.Fatalf("expired session not deleted")
	}
}

func TestRevoke_UnknownTokenIsNoError(t *testing.T) {
	mgr := NewManager(newMemorySessionRepo(), 30*time.Minute)
	if err := mgr.Revoke(context.Background(), "no-such-token"); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
}
