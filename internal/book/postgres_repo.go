package book

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = "b.id, b.title, b.author, b.isbn, b.cover_url, b.description, b.published_year, b.created_at"

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// Search builds the filter predicates once and runs two queries against them:
// an exact count, then the requested row window ordered by created_at DESC.
func (r *PostgresRepo) Search(ctx context.Context, q SearchQuery) (Page, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = 50
	}

	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if text := strings.TrimSpace(q.Q); text != "" {
		clauses = append(clauses, fmt.Sprintf("(b.title ILIKE $%d OR b.author ILIKE $%d OR b.isbn ILIKE $%d)", argn, argn+1, argn+2))
		pattern := "%" + text + "%"
		args = append(args, pattern, pattern, pattern)
		argn += 3
	}

	if author := strings.TrimSpace(q.Filters.Author); author != "" {
		clauses = append(clauses, fmt.Sprintf("b.author ILIKE $%d", argn))
		args = append(args, "%"+author+"%")
		argn++
	}

	// Present-but-empty filter sets mean "no constraint", so each predicate
	// is added only for a non-empty set.
	if len(q.Filters.Labels) > 0 {
		clauses = append(clauses, fmt.Sprintf("EXISTS (SELECT 1 FROM book_labels bl WHERE bl.book_id = b.id AND bl.label = ANY($%d))", argn))
		args = append(args, q.Filters.Labels)
		argn++
	}

	if len(q.Filters.Topics) > 0 {
		clauses = append(clauses, fmt.Sprintf("EXISTS (SELECT 1 FROM book_topics bt WHERE bt.book_id = b.id AND bt.topic = ANY($%d))", argn))
		args = append(args, q.Filters.Topics)
		argn++
	}

	if len(q.Filters.Types) > 0 {
		clauses = append(clauses, fmt.Sprintf("EXISTS (SELECT 1 FROM sources s WHERE s.book_id = b.id AND s.type = ANY($%d))", argn))
		args = append(args, q.Filters.Types)
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM books b %s", where)
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, args...).Scan(&total); err != nil {
		return Page{}, fmt.Errorf("count books: %w", err)
	}

	dataSQL := fmt.Sprintf(`
		SELECT %s
		FROM books b
		%s
		ORDER BY b.created_at DESC
		LIMIT $%d OFFSET $%d`,
		bookColumns, where, argn, argn+1)

	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, pageSize, (page-1)*pageSize)
	books, err := r.queryBooks(ctx, dataSQL, argsWithPage...)
	if err != nil {
		return Page{}, err
	}

	return Page{
		Data:     books,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	sql := fmt.Sprintf("SELECT %s FROM books b WHERE b.id = $1", bookColumns)
	books, err := r.queryBooks(ctx, sql, id)
	if err != nil {
		return Book{}, err
	}
	if len(books) == 0 {
		return Book{}, ErrNotFound
	}
	return books[0], nil
}

func (r *PostgresRepo) Window(ctx context.Context, limit int, orderByCreated bool) ([]Book, error) {
	order := ""
	if orderByCreated {
		order = "ORDER BY b.created_at DESC"
	}
	sql := fmt.Sprintf("SELECT %s FROM books b %s LIMIT $1", bookColumns, order)
	return r.queryBooks(ctx, sql, limit)
}

func (r *PostgresRepo) Newest(ctx context.Context, limit int) ([]Book, error) {
	sql := fmt.Sprintf("SELECT %s FROM books b ORDER BY b.created_at DESC LIMIT $1", bookColumns)
	return r.queryBooks(ctx, sql, limit)
}

func (r *PostgresRepo) RelatedByTopics(ctx context.Context, topics []string, limit int) ([]Book, error) {
	if len(topics) == 0 {
		return []Book{}, nil
	}
	sql := fmt.Sprintf(`
		SELECT %s
		FROM books b
		WHERE EXISTS (SELECT 1 FROM book_topics bt WHERE bt.book_id = b.id AND bt.topic = ANY($1))
		LIMIT $2`, bookColumns)
	return r.queryBooks(ctx, sql, topics, limit)
}

// queryBooks runs a book-row query, loads the joined label/topic/source rows
// for the returned ids in three follow-up queries, and normalizes the result.
func (r *PostgresRepo) queryBooks(ctx context.Context, sql string, args ...any) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	var raw []joinedRow
	for rows.Next() {
		var b bookRow
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.ISBN, &b.CoverURL,
			&b.Description, &b.PublishedYear, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		raw = append(raw, joinedRow{bookRow: b})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []Book{}, nil
	}

	ids := make([]string, len(raw))
	index := make(map[string]int, len(raw))
	for i, jr := range raw {
		ids[i] = jr.ID
		index[jr.ID] = i
	}

	if err := r.attachChildren(ctx, raw, index, ids); err != nil {
		return nil, err
	}

	out := make([]Book, len(raw))
	for i, jr := range raw {
		out[i] = normalizeRow(jr)
	}
	return out, nil
}

func (r *PostgresRepo) attachChildren(ctx context.Context, raw []joinedRow, index map[string]int, ids []string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	labelRows, err := r.db.Query(timeoutCtx,
		"SELECT book_id, label FROM book_labels WHERE book_id = ANY($1::uuid[]) ORDER BY label", ids)
	if err != nil {
		return fmt.Errorf("query labels: %w", err)
	}
	defer labelRows.Close()
	for labelRows.Next() {
		var l labelRow
		if err := labelRows.Scan(&l.BookID, &l.Label); err != nil {
			return fmt.Errorf("scan label: %w", err)
		}
		i := index[l.BookID]
		raw[i].Labels = append(raw[i].Labels, l)
	}
	if err := labelRows.Err(); err != nil {
		return err
	}

	topicRows, err := r.db.Query(timeoutCtx,
		"SELECT book_id, topic FROM book_topics WHERE book_id = ANY($1::uuid[]) ORDER BY topic", ids)
	if err != nil {
		return fmt.Errorf("query topics: %w", err)
	}
	defer topicRows.Close()
	for topicRows.Next() {
		var t topicRow
		if err := topicRows.Scan(&t.BookID, &t.Topic); err != nil {
			return fmt.Errorf("scan topic: %w", err)
		}
		i := index[t.BookID]
		raw[i].Topics = append(raw[i].Topics, t)
	}
	if err := topicRows.Err(); err != nil {
		return err
	}

	sourceRows, err := r.db.Query(timeoutCtx, `
		SELECT id, book_id, source_name, url, type, verified, format, added_at
		FROM sources
		WHERE book_id = ANY($1::uuid[])
		ORDER BY added_at`, ids)
	if err != nil {
		return fmt.Errorf("query sources: %w", err)
	}
	defer sourceRows.Close()
	for sourceRows.Next() {
		var s sourceRow
		if err := sourceRows.Scan(
			&s.ID, &s.BookID, &s.SourceName, &s.URL, &s.Type, &s.Verified, &s.Format, &s.AddedAt,
		); err != nil {
			return fmt.Errorf("scan source: %w", err)
		}
		i := index[s.BookID]
		raw[i].Sources = append(raw[i].Sources, s)
	}
	return sourceRows.Err()
}
