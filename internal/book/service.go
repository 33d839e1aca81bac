package book

import (
	"context"
	"time"
)

// Service provides catalog search and derived orderings.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Search returns one page of books matching the query.
func (s *Service) Search(ctx context.Context, q SearchQuery) (Page, error) {
	return s.repo.Search(ctx, q)
}

// GetByID returns a single book by id.
func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Popular ranks a candidate window by source count, descending.
func (s *Service) Popular(ctx context.Context, limit int) ([]Book, error) {
	window, err := s.repo.Window(ctx, rankingWindowSize, false)
	if err != nil {
		return nil, err
	}
	return rankBooks(window, limit, popularScore), nil
}

// Trending ranks the most recent candidate window by a recency-weighted score.
func (s *Service) Trending(ctx context.Context, limit int) ([]Book, error) {
	window, err := s.repo.Window(ctx, rankingWindowSize, true)
	if err != nil {
		return nil, err
	}
	now := s.now()
	return rankBooks(window, limit, func(b Book) float64 {
		return trendingScore(b, now)
	}), nil
}

// Newest returns the most recently added books, ordered store-side.
func (s *Service) Newest(ctx context.Context, limit int) ([]Book, error) {
	return s.repo.Newest(ctx, limit)
}

// RelatedByTopics returns books sharing any of the given topics.
func (s *Service) RelatedByTopics(ctx context.Context, topics []string, limit int) ([]Book, error) {
	if len(topics) == 0 {
		return []Book{}, nil
	}
	return s.repo.RelatedByTopics(ctx, topics, limit)
}
