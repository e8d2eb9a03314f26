package catalog

import (
	"context"
	"strings"

	"bookstore-api/internal/domain"
	catalogrepo "bookstore-api/internal/repository/catalog"
)

// Service is the read surface of the catalog plus the owner-side write
// operations.
type Service struct {
	repo catalogrepo.Repository
}

func New(repo catalogrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Search filters the catalog listing. Zero values mean "no constraint".
// Discontinued and out-of-stock books are hidden unless asked for;
// hiding only affects this listing, not carts or checkout.
type Search struct {
	Title            string
	Author           string
	Genre            string
	Publisher        string
	MinPages         *int32
	MaxPages         *int32
	MinPriceCents    *int64
	MaxPriceCents    *int64
	ShowDiscontinued bool
	ShowNoStock      bool
}

// ListBooks returns the catalog with the search filters applied
// in-process.
func (s *Service) ListBooks(ctx context.Context, search Search) ([]domain.Book, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	var publisherIDs map[int32]bool
	if search.Publisher != "" {
		publishers, err := s.repo.ListPublishers(ctx)
		if err != nil {
			return nil, err
		}
		publisherIDs = make(map[int32]bool)
		for _, p := range publishers {
			if containsFold(p.Name, search.Publisher) {
				publisherIDs[p.ID] = true
			}
		}
	}

	out := books[:0]
	for _, b := range books {
		if !search.ShowDiscontinued && b.Discontinued {
			continue
		}
		if !search.ShowNoStock && b.Stock == 0 {
			continue
		}
		if search.Title != "" && !containsFold(b.Title, search.Title) {
			continue
		}
		if search.Author != "" && !containsFold(b.AuthorName, search.Author) {
			continue
		}
		if search.Genre != "" && !strings.EqualFold(b.Genre, search.Genre) {
			continue
		}
		if publisherIDs != nil && !publisherIDs[b.PublisherID] {
			continue
		}
		if search.MinPages != nil && b.NumPages < *search.MinPages {
			continue
		}
		if search.MaxPages != nil && b.NumPages > *search.MaxPages {
			continue
		}
		if search.MinPriceCents != nil && b.PriceCents < *search.MinPriceCents {
			continue
		}
		if search.MaxPriceCents != nil && b.PriceCents > *search.MaxPriceCents {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *Service) GetBook(ctx context.Context, isbn int32) (*domain.Book, error) {
	return s.repo.GetBook(ctx, isbn)
}

// CreateBook validates and inserts a new catalog entry.
func (s *Service) CreateBook(ctx context.Context, b domain.Book) error {
	switch {
	case b.ISBN <= 0:
		return &domain.ValidationError{Field: "isbn", Reason: "must be positive"}
	case strings.TrimSpace(b.Title) == "":
		return &domain.ValidationError{Field: "title", Reason: "required"}
	case b.PriceCents < 0:
		return &domain.ValidationError{Field: "priceCents", Reason: "must be non-negative"}
	case b.Stock < 0:
		return &domain.ValidationError{Field: "stock", Reason: "must be non-negative"}
	case b.RoyaltyBP < 0 || b.RoyaltyBP > 10000:
		return &domain.ValidationError{Field: "royaltyBasisPoints", Reason: "must be within [0, 10000]"}
	}
	return s.repo.CreateBook(ctx, b)
}

// Discontinue hides books from default catalog listings. Lines already
// in carts stay orderable.
func (s *Service) Discontinue(ctx context.Context, isbns []int32) error {
	return s.repo.SetDiscontinued(ctx, isbns, true)
}

func (s *Service) Undiscontinue(ctx context.Context, isbns []int32) error {
	return s.repo.SetDiscontinued(ctx, isbns, false)
}

func (s *Service) ListPublishers(ctx context.Context) ([]domain.Publisher, error) {
	return s.repo.ListPublishers(ctx)
}

func (s *Service) CreatePublisher(ctx context.Context, p domain.Publisher) (*domain.Publisher, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "required"}
	}
	return s.repo.CreatePublisher(ctx, p)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
