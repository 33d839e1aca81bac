package contribute

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

func (r *PostgresRepo) Insert(ctx context.Context, sub *Submission) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(timeoutCtx)

	const bookSQL = `
		INSERT INTO books (title, author, isbn, cover_url, description, published_year)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6)
		RETURNING id`

	var bookID string
	err = tx.QueryRow(timeoutCtx, bookSQL,
		sub.Title, sub.Author, sub.ISBN, sub.CoverURL, sub.Description, sub.PublishedYear,
	).Scan(&bookID)
	if err != nil {
		return "", fmt.Errorf("insert book: %w", err)
	}

	const labelSQL = `
		INSERT INTO book_labels (book_id, label)
		VALUES ($1, $2)
		ON CONFLICT (book_id, label) DO NOTHING`
	for _, label := range sub.Labels {
		if _, err := tx.Exec(timeoutCtx, labelSQL, bookID, label); err != nil {
			return "", fmt.Errorf("insert label: %w", err)
		}
	}

	const topicSQL = `
		INSERT INTO book_topics (book_id, topic)
		VALUES ($1, $2)
		ON CONFLICT (book_id, topic) DO NOTHING`
	for _, topic := range sub.Topics {
		if _, err := tx.Exec(timeoutCtx, topicSQL, bookID, topic); err != nil {
			return "", fmt.Errorf("insert topic: %w", err)
		}
	}

	const sourceSQL = `
		INSERT INTO sources (book_id, source_name, url, type, verified, format)
		VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), $5, NULLIF($6, ''))`
	for _, src := range sub.Sources {
		if _, err := tx.Exec(timeoutCtx, sourceSQL,
			bookID, src.SourceName, src.URL, src.Type, src.Verified, src.Format,
		); err != nil {
			return "", fmt.Errorf("insert source: %w", err)
		}
	}

	if err := tx.Commit(timeoutCtx); err != nil {
		return "", err
	}
	return bookID, nil
}
