package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore-api/internal/domain"
	orderrepo "bookstore-api/internal/repository/order"
	sessionrepo "bookstore-api/internal/repository/session"
	"bookstore-api/internal/service/auth"
	catalogsvc "bookstore-api/internal/service/catalog"
	customersvc "bookstore-api/internal/service/customer"
	ownersvc "bookstore-api/internal/service/owner"
	"github.com/gin-gonic/gin"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubCatalogSvc struct {
	books      []domain.Book
	book       *domain.Book
	publishers []domain.Publisher
	err        error
}

func (s *stubCatalogSvc) ListBooks(_ context.Context, _ catalogsvc.Search) ([]domain.Book, error) {
	return s.books, s.err
}

func (s *stubCatalogSvc) GetBook(_ context.Context, _ int32) (*domain.Book, error) {
	if s.book == nil {
		return nil, domain.ErrNotFound
	}
	return s.book, s.err
}

func (s *stubCatalogSvc) CreateBook(_ context.Context, _ domain.Book) error { return s.err }

func (s *stubCatalogSvc) Discontinue(_ context.Context, _ []int32) error { return s.err }

func (s *stubCatalogSvc) Undiscontinue(_ context.Context, _ []int32) error { return s.err }

func (s *stubCatalogSvc) ListPublishers(_ context.Context) ([]domain.Publisher, error) {
	return s.publishers, s.err
}

func (s *stubCatalogSvc) CreatePublisher(_ context.Context, p domain.Publisher) (*domain.Publisher, error) {
	return &p, s.err
}

type stubCartSvc struct {
	lines  []domain.CartLine
	addErr error
	setErr error
	getErr error

	setCalls []int32
}

func (s *stubCartSvc) AddOne(_ context.Context, _, _ int32) error { return s.addErr }

func (s *stubCartSvc) SetQuantity(_ context.Context, _, isbn, _ int32) error {
	s.setCalls = append(s.setCalls, isbn)
	return s.setErr
}

func (s *stubCartSvc) GetCart(_ context.Context, _ int32) ([]domain.CartLine, error) {
	return s.lines, s.getErr
}

type stubOrderSvc struct {
	order     *domain.Order
	orders    []domain.Order
	createID  int32
	createErr error
	getErr    error

	createdLines []domain.CartLine
}

func (s *stubOrderSvc) CreateOrder(_ context.Context, _ int32, lines []domain.CartLine, _ *domain.AddressInput, _ *domain.PaymentInfoInput) (int32, error) {
	s.createdLines = lines
	return s.createID, s.createErr
}

func (s *stubOrderSvc) GetOrder(_ context.Context, _ int32) (*domain.Order, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.order == nil {
		return nil, domain.ErrNotFound
	}
	return s.order, nil
}

func (s *stubOrderSvc) GetOrderHistory(_ context.Context, _ int32) ([]domain.Order, error) {
	return s.orders, nil
}

type stubCustomerSvc struct {
	customer    *domain.Customer
	profile     *domain.CustomerProfile
	token       string
	loginErr    error
	registerErr error
	profileErr  error
}

func (s *stubCustomerSvc) Register(_ context.Context, _ customersvc.RegisterInput) (*domain.Customer, error) {
	return s.customer, s.registerErr
}

func (s *stubCustomerSvc) Login(_ context.Context, _, _ string) (*domain.Customer, string, error) {
	return s.customer, s.token, s.loginErr
}

func (s *stubCustomerSvc) Logout(_ context.Context, _ string) error { return nil }

func (s *stubCustomerSvc) Profile(_ context.Context, _ int32) (*domain.CustomerProfile, error) {
	return s.profile, s.profileErr
}

type stubOwnerSvc struct {
	token    string
	loginErr error
	owner    *domain.Owner
	accounts *ownersvc.Accounts
}

func (s *stubOwnerSvc) Login(_ context.Context, _, _ string) (string, error) {
	return s.token, s.loginErr
}

func (s *stubOwnerSvc) Logout(_ context.Context, _ string) error { return nil }

func (s *stubOwnerSvc) CreateOwner(_ context.Context, _, _, _ string) (*domain.Owner, error) {
	return s.owner, nil
}

func (s *stubOwnerSvc) ListAccounts(_ context.Context) (*ownersvc.Accounts, error) {
	return s.accounts, nil
}

func (s *stubOwnerSvc) DeleteCustomer(_ context.Context, _ int32) error { return nil }

func (s *stubOwnerSvc) DeleteOwner(_ context.Context, _ int32) error { return nil }

type stubReportSvc struct {
	byDate      []orderrepo.SalesByDateRow
	byPublisher []orderrepo.SalesByPublisherRow
}

func (s *stubReportSvc) SalesByDate(_ context.Context) ([]orderrepo.SalesByDateRow, error) {
	return s.byDate, nil
}

func (s *stubReportSvc) SalesByPublisher(_ context.Context) ([]orderrepo.SalesByPublisherRow, error) {
	return s.byPublisher, nil
}

type stubSessions struct {
	session *sessionrepo.Session
	err     error
}

func (s *stubSessions) Lookup(_ context.Context, _ string) (*sessionrepo.Session, error) {
	return s.session, s.err
}

func customerSession(id int32) *stubSessions {
	return &stubSessions{session: &sessionrepo.Session{Token: "t", Kind: sessionrepo.KindCustomer, SubjectID: id}}
}

func ownerSession(id int32) *stubSessions {
	return &stubSessions{session: &sessionrepo.Session{Token: "t", Kind: sessionrepo.KindOwner, SubjectID: id}}
}

func testDeps() Deps {
	return Deps{
		CatalogSvc:  &stubCatalogSvc{},
		CartSvc:     &stubCartSvc{},
		OrderSvc:    &stubOrderSvc{},
		CustomerSvc: &stubCustomerSvc{},
		OwnerSvc:    &stubOwnerSvc{},
		ReportSvc:   &stubReportSvc{},
		Sessions:    &stubSessions{err: auth.ErrInvalidSession},
	}
}

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, deps, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func TestBuildRouter_MissingDependency(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.OrderSvc = nil
	if _, err := buildRouter(logDiscard(), nil, deps, nil); err == nil {
		t.Fatalf("expected error for missing dependency")
	}
}

func TestProtectedRoute_MissingToken(t *testing.T) {
	router := newTestRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestProtectedRoute_InvalidToken(t *testing.T) {
	router := newTestRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestOwnerRoute_CustomerSessionForbidden(t *testing.T) {
	deps := testDeps()
	deps.Sessions = customerSession(1)
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/owner/accounts", nil)
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestCustomerRoute_OwnerSessionForbidden(t *testing.T) {
	deps := testDeps()
	deps.Sessions = ownerSession(0)
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestSessionCookieFallback(t *testing.T) {
	deps := testDeps()
	deps.Sessions = customerSession(1)
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "t"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
