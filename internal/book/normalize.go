package book

import (
	"time"
)

// Raw row shapes as they come back from the store, before any mapping.
type bookRow struct {
	ID            string
	Title         string
	Author        *string
	ISBN          *string
	CoverURL      *string
	Description   *string
	PublishedYear *int
	CreatedAt     time.Time
}

type labelRow struct {
	BookID string
	Label  string
}

type topicRow struct {
	BookID string
	Topic  string
}

type sourceRow struct {
	ID         string
	BookID     string
	SourceName *string
	URL        string
	Type       *string
	Verified   *bool
	Format     *string
	AddedAt    time.Time
}

// joinedRow is a book row together with its joined child rows.
type joinedRow struct {
	bookRow
	Labels  []labelRow
	Topics  []topicRow
	Sources []sourceRow
}

// normalizeRow maps a raw joined row to the canonical Book. It is pure and
// total: nullable columns pass through as pointers, a NULL verified flag
// becomes false, label and topic rows flatten to strings, and sources are
// renamed field-for-field with no filtering or dedup.
func normalizeRow(row joinedRow) Book {
	labels := make([]string, 0, len(row.Labels))
	for _, l := range row.Labels {
		labels = append(labels, l.Label)
	}

	topics := make([]string, 0, len(row.Topics))
	for _, t := range row.Topics {
		topics = append(topics, t.Topic)
	}

	sources := make([]Source, 0, len(row.Sources))
	for _, s := range row.Sources {
		verified := false
		if s.Verified != nil {
			verified = *s.Verified
		}
		sources = append(sources, Source{
			ID:         s.ID,
			BookID:     s.BookID,
			SourceName: s.SourceName,
			URL:        s.URL,
			Type:       s.Type,
			Verified:   verified,
			Format:     s.Format,
			AddedAt:    s.AddedAt,
		})
	}

	return Book{
		ID:            row.ID,
		Title:         row.Title,
		Author:        row.Author,
		ISBN:          row.ISBN,
		CoverURL:      row.CoverURL,
		Description:   row.Description,
		PublishedYear: row.PublishedYear,
		CreatedAt:     row.CreatedAt,
		Labels:        labels,
		Topics:        topics,
		Sources:       sources,
	}
}
