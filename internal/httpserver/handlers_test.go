package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bookstore-api/internal/domain"
	customersvc "bookstore-api/internal/service/customer"
)

func TestListBooksHandler(t *testing.T) {
	deps := testDeps()
	deps.CatalogSvc = &stubCatalogSvc{books: []domain.Book{{ISBN: 1, Title: "T"}}}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/books?title=t&minPages=100", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"title":"T"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestGetBookHandler_BadISBN(t *testing.T) {
	router := newTestRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/books/notanumber", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetBookHandler_NotFound(t *testing.T) {
	router := newTestRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/books/123", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	deps := testDeps()
	deps.CustomerSvc = &stubCustomerSvc{loginErr: customersvc.ErrInvalidCredentials}
	router := newTestRouter(t, deps)

	body := `{"email":"user@example.com","password":"badpass"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginHandler_SetsSessionCookie(t *testing.T) {
	deps := testDeps()
	deps.CustomerSvc = &stubCustomerSvc{
		customer: &domain.Customer{ID: 1, Name: "A", Email: "user@example.com"},
		token:    "session-token",
	}
	router := newTestRouter(t, deps)

	body := `{"email":"user@example.com","password":"longenough"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	cookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, sessionCookieName+"=session-token") {
		t.Fatalf("session cookie not set: %q", cookie)
	}
	if !strings.Contains(rec.Body.String(), `"token":"session-token"`) {
		t.Fatalf("token missing from body %s", rec.Body.String())
	}
}

func TestProfileHandler_CensorsCardNumber(t *testing.T) {
	deps := testDeps()
	deps.Sessions = customerSession(1)
	deps.CustomerSvc = &stubCustomerSvc{
		profile: &domain.CustomerProfile{
			Customer: domain.Customer{ID: 1, Name: "A", Email: "user@example.com"},
			Payment:  domain.PaymentInfo{NameOnCard: "A", Expiry: "12/30", CardNumber: "4111111111111111"},
		},
	}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if strings.Contains(body, "4111111111111111") {
		t.Fatalf("raw card number leaked: %s", body)
	}
	if !strings.Contains(body, `"************1111"`) {
		t.Fatalf("censored card number missing: %s", body)
	}
}

func TestSetCartQuantityHandler_InsufficientStock(t *testing.T) {
	deps := testDeps()
	deps.Sessions = customerSession(1)
	deps.CartSvc = &stubCartSvc{setErr: &domain.InsufficientStockError{ISBN: 100}}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodPut, "/cart/items/100", strings.NewReader(`{"quantity":5}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"isbn":100`) {
		t.Fatalf("isbn missing from body %s", rec.Body.String())
	}
}

func TestSetCartQuantityHandler_MissingQuantity(t *testing.T) {
	deps := testDeps()
	deps.Sessions = customerSession(1)
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodPut, "/cart/items/100", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAddToCartHandler(t *testing.T) {
	deps := testDeps()
	deps.Sessions = customerSession(1)
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/cart/items/100", nil)
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestCreateOrderHandler_PassesCartSnapshot(t *testing.T) {
	orderSvc := &stubOrderSvc{createID: 7}
	deps := testDeps()
	deps.Sessions = customerSession(1)
	deps.OrderSvc = orderSvc
	deps.CartSvc = &stubCartSvc{lines: []domain.CartLine{{ISBN: 100, Quantity: 2}}}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"orderId":7`) {
		t.Fatalf("order id missing from body %s", rec.Body.String())
	}
	if len(orderSvc.createdLines) != 1 || orderSvc.createdLines[0].ISBN != 100 {
		t.Fatalf("cart snapshot not passed: %+v", orderSvc.createdLines)
	}
}

func TestCreateOrderHandler_BadExpiryOverride(t *testing.T) {
	deps := testDeps()
	deps.Sessions = customerSession(1)
	router := newTestRouter(t, deps)

	body := `{"payment":{"nameOnCard":"A","expiry":"13/30","cardNumber":"4111111111111111","cvv":"123","billingAddress":{}}}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestGetOrderHandler_OtherCustomersOrderIsNotFound(t *testing.T) {
	deps := testDeps()
	deps.Sessions = customerSession(1)
	deps.OrderSvc = &stubOrderSvc{order: &domain.Order{
		OrderSummary: domain.OrderSummary{
			ID:         5,
			CustomerID: 2,
			OrderDate:  time.Now(),
			Payment:    domain.PaymentInfo{Expiry: "12/30"},
		},
	}}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/orders/5", nil)
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetOrderHandler_OwnOrder(t *testing.T) {
	deps := testDeps()
	deps.Sessions = customerSession(1)
	deps.OrderSvc = &stubOrderSvc{order: &domain.Order{
		OrderSummary: domain.OrderSummary{
			ID:             5,
			CustomerID:     1,
			TrackingNumber: "123456789",
			Status:         domain.StatusPending,
			OrderDate:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			Payment:        domain.PaymentInfo{Expiry: "12/30", CardNumber: "4111111111111111"},
		},
		Lines: []domain.OrderLine{{Book: domain.Book{ISBN: 100, Title: "T"}, Quantity: 2}},
	}}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/orders/5", nil)
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"orderDate":"2026-08-01"`) {
		t.Fatalf("order date missing: %s", body)
	}
	if strings.Contains(body, "4111111111111111") {
		t.Fatalf("raw card number leaked: %s", body)
	}
}

func TestStateErrorIsOpaque(t *testing.T) {
	deps := testDeps()
	deps.Sessions = customerSession(1)
	deps.OrderSvc = &stubOrderSvc{getErr: &domain.StateError{What: "no customer with id 1"}}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/orders/5", nil)
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "no customer") {
		t.Fatalf("internal detail leaked: %s", rec.Body.String())
	}
}

func TestOwnerReports(t *testing.T) {
	deps := testDeps()
	deps.Sessions = ownerSession(0)
	router := newTestRouter(t, deps)

	for _, path := range []string{"/owner/reports/sales-by-date", "/owner/reports/sales-by-publisher"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer t")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d body=%s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestCreateBookHandler_ValidationError(t *testing.T) {
	deps := testDeps()
	deps.Sessions = ownerSession(0)
	deps.CatalogSvc = &stubCatalogSvc{err: &domain.ValidationError{Field: "isbn", Reason: "must be positive"}}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/owner/books", strings.NewReader(`{"isbn":0,"title":"T"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "isbn") {
		t.Fatalf("validation detail missing: %s", rec.Body.String())
	}
}
