package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
)

// ValidationError reports malformed user input. It is never retried and
// maps to a 400 at the HTTP layer.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientStockError is the business-rule failure for cart and order
// operations that would exceed available stock. ISBN identifies the
// offending line so callers can re-render the cart.
type InsufficientStockError struct {
	ISBN int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for isbn %d", e.ISBN)
}

// StateError reports an internal-consistency fault: a referenced row is
// missing or persisted data is unreadable. It is distinct from user error
// and surfaces as a request-level failure.
type StateError struct {
	What string
}

func (e *StateError) Error() string {
	return "invalid application state: " + e.What
}
