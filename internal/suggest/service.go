package suggest

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Service merges title, author and topic lookups into one suggestion list.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest runs the three lookups concurrently, merges them title-first, then
// author, then topic, drops (kind, lowercased value) duplicates and truncates
// the merged sequence to limit. A whitespace-only query returns an empty
// result without touching the store. If any lookup fails the whole call fails.
func (s *Service) Suggest(ctx context.Context, query string, limit int) ([]Suggestion, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return []Suggestion{}, nil
	}

	var titles, authors, topics []string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		titles, err = s.repo.TitleMatches(gctx, q, limit)
		return err
	})
	g.Go(func() error {
		var err error
		authors, err = s.repo.AuthorMatches(gctx, q, limit)
		return err
	})
	g.Go(func() error {
		var err error
		topics, err = s.repo.TopicMatches(gctx, q, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]Suggestion, 0, len(titles)+len(authors)+len(topics))
	for _, v := range titles {
		merged = append(merged, Suggestion{Kind: KindTitle, Value: v})
	}
	for _, v := range authors {
		merged = append(merged, Suggestion{Kind: KindAuthor, Value: v})
	}
	for _, v := range topics {
		merged = append(merged, Suggestion{Kind: KindTopic, Value: v})
	}

	seen := make(map[string]bool, len(merged))
	unique := merged[:0]
	for _, sg := range merged {
		key := string(sg.Kind) + ":" + strings.ToLower(sg.Value)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, sg)
	}

	if limit > 0 && len(unique) > limit {
		unique = unique[:limit]
	}
	return unique, nil
}

// Topics returns topic autocomplete values, unique and capped at limit.
func (s *Service) Topics(ctx context.Context, query string, limit int) ([]string, error) {
	topics, err := s.repo.Topics(ctx, strings.TrimSpace(query), limit)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(topics))
	unique := make([]string, 0, len(topics))
	for _, t := range topics {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		unique = append(unique, t)
	}
	if limit > 0 && len(unique) > limit {
		unique = unique[:limit]
	}
	return unique, nil
}
