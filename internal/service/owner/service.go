package owner

import (
	"context"
	"errors"
	"strings"

	"bookstore-api/internal/domain"
	custrepo "bookstore-api/internal/repository/customer"
	ownerrepo "bookstore-api/internal/repository/owner"
	sessionrepo "bookstore-api/internal/repository/session"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any owner login failure,
// indistinguishable between a missing account and a bad password.
var ErrInvalidCredentials = errors.New("invalid email/password")

// Bootstrap credentials, accepted only while the owners table is empty.
const (
	bootstrapEmail    = "admin@local"
	bootstrapPassword = "default"
)

// Service handles store-owner login and account administration.
type Service struct {
	owners    ownerrepo.Repository
	customers custrepo.Repository
	sessions  sessionIssuer
}

type sessionIssuer interface {
	Issue(ctx context.Context, kind string, subjectID int32) (string, error)
	Revoke(ctx context.Context, token string) error
}

func New(owners ownerrepo.Repository, customers custrepo.Repository, sessions sessionIssuer) *Service {
	return &Service{owners: owners, customers: customers, sessions: sessions}
}

// Login validates owner credentials and returns a session token. Until
// the first owner account exists, the bootstrap credentials are the only
// way in; once one exists they stop working.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	any, err := s.owners.Any(ctx)
	if err != nil {
		return "", err
	}

	if !any {
		if email != bootstrapEmail || password != bootstrapPassword {
			return "", ErrInvalidCredentials
		}
		return s.sessions.Issue(ctx, sessionrepo.KindOwner, 0)
	}

	o, err := s.owners.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.sessions.Issue(ctx, sessionrepo.KindOwner, o.ID)
}

// Logout revokes the session token.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// CreateOwner registers a new owner account.
func (s *Service) CreateOwner(ctx context.Context, name, email, password string) (*domain.Owner, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, &domain.ValidationError{Field: "email", Reason: "required"}
	}
	if password == "" {
		return nil, &domain.ValidationError{Field: "password", Reason: "required"}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.owners.Create(ctx, domain.Owner{Name: name, Email: email, PasswordHash: string(hashed)})
}

// Accounts is the admin listing of every customer and owner.
type Accounts struct {
	Customers []domain.Customer `json:"customers"`
	Owners    []domain.Owner    `json:"owners"`
}

func (s *Service) ListAccounts(ctx context.Context) (*Accounts, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	owners, err := s.owners.List(ctx)
	if err != nil {
		return nil, err
	}
	return &Accounts{Customers: customers, Owners: owners}, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, id int32) error {
	return s.customers.Delete(ctx, id)
}

func (s *Service) DeleteOwner(ctx context.Context, id int32) error {
	return s.owners.Delete(ctx, id)
}
