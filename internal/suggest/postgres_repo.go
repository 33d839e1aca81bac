package suggest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) TitleMatches(ctx context.Context, q string, limit int) ([]string, error) {
	return r.stringMatches(ctx, "SELECT title FROM books WHERE title ILIKE $1 LIMIT $2", q, limit)
}

func (r *PostgresRepo) AuthorMatches(ctx context.Context, q string, limit int) ([]string, error) {
	return r.stringMatches(ctx, "SELECT author FROM books WHERE author IS NOT NULL AND author ILIKE $1 LIMIT $2", q, limit)
}

func (r *PostgresRepo) TopicMatches(ctx context.Context, q string, limit int) ([]string, error) {
	return r.stringMatches(ctx, "SELECT topic FROM book_topics WHERE topic ILIKE $1 LIMIT $2", q, limit)
}

func (r *PostgresRepo) Topics(ctx context.Context, q string, limit int) ([]string, error) {
	sql := "SELECT topic FROM book_topics ORDER BY topic ASC LIMIT $1"
	args := []any{limit}
	if q != "" {
		sql = "SELECT topic FROM book_topics WHERE topic ILIKE $1 ORDER BY topic ASC LIMIT $2"
		args = []any{"%" + q + "%", limit}
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var topic string
		if err := rows.Scan(&topic); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		out = append(out, topic)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) stringMatches(ctx context.Context, sql, q string, limit int) ([]string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, sql, "%"+q+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("query suggestions: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
