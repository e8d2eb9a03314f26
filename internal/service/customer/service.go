package customer

import (
	"context"
	"errors"
	"strings"

	"bookstore-api/internal/domain"
	custrepo "bookstore-api/internal/repository/customer"
	sessionrepo "bookstore-api/internal/repository/session"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when email/password do not match. The
// message is identical whether the account is missing or the password is
// wrong, to avoid account enumeration.
var ErrInvalidCredentials = errors.New("invalid email/password")

// Service handles customer registration, login and the account view.
type Service struct {
	repo        custrepo.Repository
	sessions    sessionIssuer
	passwordMin int
}

type sessionIssuer interface {
	Issue(ctx context.Context, kind string, subjectID int32) (string, error)
	Revoke(ctx context.Context, token string) error
}

func New(repo custrepo.Repository, sessions sessionIssuer) *Service {
	return &Service{repo: repo, sessions: sessions, passwordMin: 8}
}

// RegisterInput carries the registration form. Expiry arrives as its
// MM/YY wire string and is validated here.
type RegisterInput struct {
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	Password   string              `json:"password"`
	Address    domain.AddressInput `json:"address"`
	NameOnCard string              `json:"nameOnCard"`
	Expiry     string              `json:"expiry"`
	CardNumber string              `json:"cardNumber"`
	CVV        string              `json:"cvv"`
	Billing    domain.AddressInput `json:"billingAddress"`
}

// Register creates the customer together with brand-new default address
// and payment rows. Registration never reuses existing value rows.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Customer, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, &domain.ValidationError{Field: "email", Reason: "required"}
	}
	if len(in.Password) < s.passwordMin {
		return nil, &domain.ValidationError{Field: "password", Reason: "too short"}
	}
	expiry, err := domain.ParseExpiry(in.Expiry)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, custrepo.RegisterInput{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Address:      in.Address,
		Payment: domain.PaymentInfoInput{
			NameOnCard:     in.NameOnCard,
			Expiry:         expiry,
			CardNumber:     in.CardNumber,
			CVV:            in.CVV,
			BillingAddress: in.Billing,
		},
	})
}

// Login validates credentials and returns the customer plus a session
// token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Customer, string, error) {
	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(ctx, sessionrepo.KindCustomer, c.ID)
	if err != nil {
		return nil, "", err
	}
	return c, token, nil
}

// Logout revokes the session token.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// Profile returns the joined account view. A stored expiry that fails to
// parse is a StateError.
func (s *Service) Profile(ctx context.Context, customerID int32) (*domain.CustomerProfile, error) {
	prof, err := s.repo.GetProfile(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if _, err := domain.ParseExpiry(prof.Payment.Expiry); err != nil {
		return nil, &domain.StateError{What: "unparsable expiry on default payment info"}
	}
	return prof, nil
}
