package contribute

import (
	"context"
	"strings"
)

// Service accepts and persists book contributions.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit cleans up the submission and stores it, returning the new book id.
// Labels and topics are trimmed and deduplicated; validation is the caller's
// responsibility.
func (s *Service) Submit(ctx context.Context, sub *Submission) (string, error) {
	sub.Title = strings.TrimSpace(sub.Title)
	sub.Labels = dedupeStrings(sub.Labels)
	sub.Topics = dedupeStrings(sub.Topics)
	return s.repo.Insert(ctx, sub)
}

func dedupeStrings(in []string) []string {
	if len(in) == 0 {
		return in
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
