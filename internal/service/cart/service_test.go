package cart

import (
	"context"
	"errors"
	"testing"

	"bookstore-api/internal/domain"
)

// memoryCartRepo is an in-memory cart repository for tests.
type memoryCartRepo struct {
	lines map[int32]map[int32]int32
}

func newMemoryCartRepo() *memoryCartRepo {
	return &memoryCartRepo{lines: make(map[int32]map[int32]int32)}
}

func (r *memoryCartRepo) GetQuantity(_ context.Context, customerID, isbn int32) (int32, error) {
	q, ok := r.lines[customerID][isbn]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return q, nil
}

func (r *memoryCartRepo) InsertLine(_ context.Context, customerID, isbn, quantity int32) error {
	if r.lines[customerID] == nil {
		r.lines[customerID] = make(map[int32]int32)
	}
	if _, exists := r.lines[customerID][isbn]; exists {
		return domain.ErrAlreadyExists
	}
	r.lines[customerID][isbn] = quantity
	return nil
}

func (r *memoryCartRepo) IncrementLine(_ context.Context, customerID, isbn int32) error {
	if _, ok := r.lines[customerID][isbn]; !ok {
		return domain.ErrNotFound
	}
	r.lines[customerID][isbn]++
	return nil
}

func (r *memoryCartRepo) UpsertLine(_ context.Context, customerID, isbn, quantity int32) error {
	if r.lines[customerID] == nil {
		r.lines[customerID] = make(map[int32]int32)
	}
	r.lines[customerID][isbn] = quantity
	return nil
}

func (r *memoryCartRepo) DeleteLine(_ context.Context, customerID, isbn int32) error {
	delete(r.lines[customerID], isbn)
	return nil
}

func (r *memoryCartRepo) List(_ context.Context, customerID int32) ([]domain.CartLine, error) {
	var out []domain.CartLine
	for isbn, q := range r.lines[customerID] {
		out = append(out, domain.CartLine{ISBN: isbn, Quantity: q})
	}
	return out, nil
}

func (r *memoryCartRepo) Clear(_ context.Context, customerID int32) error {
	delete(r.lines, customerID)
	return nil
}

type stubStockRepo struct {
	stock map[int32]int32
}

func (s *stubStockRepo) GetStock(_ context.Context, isbn int32) (int32, error) {
	q, ok := s.stock[isbn]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return q, nil
}

func TestAddOne_NewLineStartsAtOne(t *testing.T) {
	repo := newMemoryCartRepo()
	svc := New(repo, &stubStockRepo{stock: map[int32]int32{100: 10}})

	if err := svc.AddOne(context.Background(), 1, 100); err != nil {
		t.Fatalf("AddOne: %v", err)
	}
	if q := repo.lines[1][100]; q != 1 {
		t.Fatalf("quantity = %d, want 1", q)
	}
}

func TestAddOne_ExistingLineIncrements(t *testing.T) {
	repo := newMemoryCartRepo()
	repo.UpsertLine(context.Background(), 1, 100, 2)
	svc := New(repo, &stubStockRepo{stock: map[int32]int32{100: 10}})

	if err := svc.AddOne(context.Background(), 1, 100); err != nil {
		t.Fatalf("AddOne: %v", err)
	}
	if q := repo.lines[1][100]; q != 3 {
		t.Fatalf("quantity = %d, want 3", q)
	}
}

func TestSetQuantity_NegativeRejected(t *testing.T) {
	repo := newMemoryCartRepo()
	svc := New(repo, &stubStockRepo{stock: map[int32]int32{100: 10}})

	err := svc.SetQuantity(context.Background(), 1, 100, -1)
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSetQuantity_EqualToStockFails(t *testing.T) {
	repo := newMemoryCartRepo()
	svc := New(repo, &stubStockRepo{stock: map[int32]int32{100: 3}})

	err := svc.SetQuantity(context.Background(), 1, 100, 3)
	var stockErr *domain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.ISBN != 100 {
		t.Fatalf("isbn = %d, want 100", stockErr.ISBN)
	}
	if _, ok := repo.lines[1][100]; ok {
		t.Fatalf("cart was modified on failed check")
	}
}

func TestSetQuantity_BelowStockSucceeds(t *testing.T) {
	repo := newMemoryCartRepo()
	svc := New(repo, &stubStockRepo{stock: map[int32]int32{100: 5}})

	if err := svc.SetQuantity(context.Background(), 1, 100, 4); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if q := repo.lines[1][100]; q != 4 {
		t.Fatalf("quantity = %d, want 4", q)
	}
}

func TestSetQuantity_ZeroDeletesLine(t *testing.T) {
	repo := newMemoryCartRepo()
	repo.UpsertLine(context.Background(), 1, 100, 2)
	svc := New(repo, &stubStockRepo{stock: map[int32]int32{100: 5}})

	if err := svc.SetQuantity(context.Background(), 1, 100, 0); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if _, ok := repo.lines[1][100]; ok {
		t.Fatalf("line not deleted")
	}
}

// The stock check runs before the zero-delete branch, so removing a line
// for a sold-out book fails rather than deleting.
func TestSetQuantity_ZeroWithNoStockFails(t *testing.T) {
	repo := newMemoryCartRepo()
	repo.UpsertLine(context.Background(), 1, 100, 2)
	svc := New(repo, &stubStockRepo{stock: map[int32]int32{100: 0}})

	err := svc.SetQuantity(context.Background(), 1, 100, 0)
	var stockErr *domain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if q := repo.lines[1][100]; q != 2 {
		t.Fatalf("line changed on failed check: %d", q)
	}
}

func TestGetCart_ClampsNegativeQuantities(t *testing.T) {
	repo := newMemoryCartRepo()
	repo.UpsertLine(context.Background(), 1, 100, -3)
	repo.UpsertLine(context.Background(), 1, 200, 2)
	svc := New(repo, &stubStockRepo{})

	lines, err := svc.GetCart(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	for _, line := range lines {
		if line.Quantity < 0 {
			t.Fatalf("negative quantity leaked: %+v", line)
		}
	}
}

func TestClear(t *testing.T) {
	repo := newMemoryCartRepo()
	repo.UpsertLine(context.Background(), 1, 100, 2)
	svc := New(repo, &stubStockRepo{})

	if err := svc.Clear(context.Background(), 1); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	lines, _ := repo.List(context.Background(), 1)
	if len(lines) != 0 {
		t.Fatalf("cart not cleared: %+v", lines)
	}
}
