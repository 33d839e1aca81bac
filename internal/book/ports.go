package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for catalog data access.
type Repository interface {
	// Search returns one page of books matching the query plus the exact
	// pre-pagination total, both resolved in a single call.
	Search(ctx context.Context, q SearchQuery) (Page, error)
	// GetByID returns a single book or ErrNotFound.
	GetByID(ctx context.Context, id string) (Book, error)
	// Window returns a bounded candidate set for in-memory ranking. When
	// orderByCreated is true the window holds the most recent rows by
	// created_at, otherwise the store order is arbitrary.
	Window(ctx context.Context, limit int, orderByCreated bool) ([]Book, error)
	// Newest returns the most recently added books, ordered store-side.
	Newest(ctx context.Context, limit int) ([]Book, error)
	// RelatedByTopics returns books sharing at least one of the given topics.
	RelatedByTopics(ctx context.Context, topics []string, limit int) ([]Book, error)
}
