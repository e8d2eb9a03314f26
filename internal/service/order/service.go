package order

import (
	"context"
	"errors"
	"io"
	"log"
	"math/rand"
	"strconv"
	"time"

	"bookstore-api/internal/domain"
	orderrepo "bookstore-api/internal/repository/order"
)

// Service places and reads orders. Placement runs through a fixed
// sequence: validate stock for the whole cart snapshot, resolve the
// shipping and payment snapshots, then persist the order, decrement
// stock and clear the cart in one transaction. A failure before the
// transaction touches nothing; a failure inside it rolls everything
// back.
type Service struct {
	orders    orderRepo
	customers customerRepo
	identity  resolver
	stock     stockRepo
	logger    *log.Logger
}

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateInput) (int32, error)
	GetSummary(ctx context.Context, orderID int32) (*domain.OrderSummary, error)
	GetLines(ctx context.Context, orderID int32) ([]domain.OrderLine, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.OrderSummary, error)
}

type customerRepo interface {
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
}

type resolver interface {
	ResolveAddress(ctx context.Context, in domain.AddressInput) (int32, error)
	ResolvePaymentInfo(ctx context.Context, in domain.PaymentInfoInput) (int32, error)
}

type stockRepo interface {
	GetStock(ctx context.Context, isbn int32) (int32, error)
}

func New(orders orderrepo.Repository, customers customerRepo, identity resolver, stock stockRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{orders: orders, customers: customers, identity: identity, stock: stock, logger: logger}
}

// CreateOrder places an order for the given cart snapshot. Nil overrides
// fall back to the customer's stored defaults; a customer id with no
// backing row is a StateError, not a validation failure.
func (s *Service) CreateOrder(
	ctx context.Context,
	customerID int32,
	lines []domain.CartLine,
	addressOverride *domain.AddressInput,
	paymentOverride *domain.PaymentInfoInput,
) (int32, error) {
	for _, line := range lines {
		stock, err := s.stock.GetStock(ctx, line.ISBN)
		if err != nil {
			return 0, err
		}
		if line.Quantity >= stock {
			return 0, &domain.InsufficientStockError{ISBN: line.ISBN}
		}
	}

	addressID, err := s.resolveShipping(ctx, customerID, addressOverride)
	if err != nil {
		return 0, err
	}

	paymentID, err := s.resolvePayment(ctx, customerID, paymentOverride)
	if err != nil {
		return 0, err
	}

	orderID, err := s.orders.Create(ctx, orderrepo.CreateInput{
		CustomerID:        customerID,
		ShippingAddressID: addressID,
		PaymentInfoID:     paymentID,
		TrackingNumber:    trackingNumber(),
		Status:            domain.StatusPending,
		OrderDate:         time.Now(),
		Lines:             lines,
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

func (s *Service) resolveShipping(ctx context.Context, customerID int32, override *domain.AddressInput) (int32, error) {
	if override != nil {
		return s.identity.ResolveAddress(ctx, *override)
	}
	c, err := s.lookupCustomer(ctx, customerID)
	if err != nil {
		return 0, err
	}
	return c.DefaultShippingAddressID, nil
}

func (s *Service) resolvePayment(ctx context.Context, customerID int32, override *domain.PaymentInfoInput) (int32, error) {
	if override != nil {
		return s.identity.ResolvePaymentInfo(ctx, *override)
	}
	c, err := s.lookupCustomer(ctx, customerID)
	if err != nil {
		return 0, err
	}
	return c.DefaultPaymentInfoID, nil
}

func (s *Service) lookupCustomer(ctx context.Context, customerID int32) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// The session referenced a customer row that no longer
			// exists; that is corruption, not user error.
			return nil, &domain.StateError{What: "no customer with id " + strconv.Itoa(int(customerID))}
		}
		return nil, err
	}
	return c, nil
}

// GetOrder returns an order with its line items. A persisted expiry that
// no longer parses is surfaced as a StateError rather than defaulted.
func (s *Service) GetOrder(ctx context.Context, orderID int32) (*domain.Order, error) {
	summary, err := s.orders.GetSummary(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.checkSummary(*summary); err != nil {
		return nil, err
	}
	lines, err := s.orders.GetLines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &domain.Order{OrderSummary: *summary, Lines: lines}, nil
}

// GetOrderHistory returns every order of the customer, newest first.
func (s *Service) GetOrderHistory(ctx context.Context, customerID int32) ([]domain.Order, error) {
	summaries, err := s.orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(summaries))
	for _, summary := range summaries {
		if err := s.checkSummary(summary); err != nil {
			return nil, err
		}
		lines, err := s.orders.GetLines(ctx, summary.ID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, domain.Order{OrderSummary: summary, Lines: lines})
	}
	return orders, nil
}

func (s *Service) checkSummary(summary domain.OrderSummary) error {
	if _, err := domain.ParseExpiry(summary.Payment.Expiry); err != nil {
		s.logger.Printf("order service: corrupt expiry on order %d: %q", summary.ID, summary.Payment.Expiry)
		return &domain.StateError{What: "unparsable expiry on order " + strconv.Itoa(int(summary.ID))}
	}
	return nil
}

// trackingNumber renders a random 32-bit integer in decimal. Uniqueness
// is probabilistic only; collisions are not checked.
func trackingNumber() string {
	return strconv.FormatUint(uint64(rand.Uint32()), 10)
}
