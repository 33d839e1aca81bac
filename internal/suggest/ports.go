package suggest

import (
	"context"
)

// Repository defines the lookups backing the suggestion engine.
type Repository interface {
	TitleMatches(ctx context.Context, q string, limit int) ([]string, error)
	AuthorMatches(ctx context.Context, q string, limit int) ([]string, error)
	TopicMatches(ctx context.Context, q string, limit int) ([]string, error)
	// Topics lists topics ascending, optionally filtered by substring.
	Topics(ctx context.Context, q string, limit int) ([]string, error)
}
