package httpserver

import (
	"context"

	"bookstore-api/internal/domain"
	orderrepo "bookstore-api/internal/repository/order"
	sessionrepo "bookstore-api/internal/repository/session"
	catalogsvc "bookstore-api/internal/service/catalog"
	customersvc "bookstore-api/internal/service/customer"
	ownersvc "bookstore-api/internal/service/owner"
)

// Deps carries the service interfaces the handlers depend on. Tests stub
// them.
type Deps struct {
	CatalogSvc  CatalogService
	CartSvc     CartService
	OrderSvc    OrderService
	CustomerSvc CustomerService
	OwnerSvc    OwnerService
	ReportSvc   ReportService
	Sessions    SessionLookup
}

type CatalogService interface {
	ListBooks(ctx context.Context, search catalogsvc.Search) ([]domain.Book, error)
	GetBook(ctx context.Context, isbn int32) (*domain.Book, error)
	CreateBook(ctx context.Context, b domain.Book) error
	Discontinue(ctx context.Context, isbns []int32) error
	Undiscontinue(ctx context.Context, isbns []int32) error
	ListPublishers(ctx context.Context) ([]domain.Publisher, error)
	CreatePublisher(ctx context.Context, p domain.Publisher) (*domain.Publisher, error)
}

type CartService interface {
	AddOne(ctx context.Context, customerID, isbn int32) error
	SetQuantity(ctx context.Context, customerID, isbn, quantity int32) error
	GetCart(ctx context.Context, customerID int32) ([]domain.CartLine, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, customerID int32, lines []domain.CartLine, addressOverride *domain.AddressInput, paymentOverride *domain.PaymentInfoInput) (int32, error)
	GetOrder(ctx context.Context, orderID int32) (*domain.Order, error)
	GetOrderHistory(ctx context.Context, customerID int32) ([]domain.Order, error)
}

type CustomerService interface {
	Register(ctx context.Context, in customersvc.RegisterInput) (*domain.Customer, error)
	Login(ctx context.Context, email, password string) (*domain.Customer, string, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, customerID int32) (*domain.CustomerProfile, error)
}

type OwnerService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	CreateOwner(ctx context.Context, name, email, password string) (*domain.Owner, error)
	ListAccounts(ctx context.Context) (*ownersvc.Accounts, error)
	DeleteCustomer(ctx context.Context, id int32) error
	DeleteOwner(ctx context.Context, id int32) error
}

type ReportService interface {
	SalesByDate(ctx context.Context) ([]orderrepo.SalesByDateRow, error)
	SalesByPublisher(ctx context.Context) ([]orderrepo.SalesByPublisherRow, error)
}

type SessionLookup interface {
	Lookup(ctx context.Context, token string) (*sessionrepo.Session, error)
}
