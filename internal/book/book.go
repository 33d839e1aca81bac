package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book is the canonical denormalized book view served to clients.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        *string   `json:"author"`
	ISBN          *string   `json:"isbn"`
	CoverURL      *string   `json:"cover_url"`
	Description   *string   `json:"description"`
	PublishedYear *int      `json:"published_year"`
	CreatedAt     time.Time `json:"created_at"`
	Labels        []string  `json:"labels"`
	Topics        []string  `json:"topics"`
	Sources       []Source  `json:"sources"`
}

// Source is an external location where a book can be obtained.
type Source struct {
	ID         string    `json:"id"`
	BookID     string    `json:"book_id"`
	SourceName *string   `json:"source_name"`
	URL        string    `json:"url"`
	Type       *string   `json:"type"`
	Verified   bool      `json:"verified"`
	Format     *string   `json:"format"`
	AddedAt    time.Time `json:"added_at"`
}

// SearchFilters narrows a catalog search. All fields are conjunctive.
// A nil or empty slice means "no constraint", never "match nothing".
type SearchFilters struct {
	Author string
	Labels []string
	Topics []string
	Types  []string
}

// SearchQuery defines the text search, filters and pagination for listing books.
type SearchQuery struct {
	Q        string
	Filters  SearchFilters
	Page     int
	PageSize int
}

// Page is one page of search results plus the pre-pagination total.
type Page struct {
	Data     []Book `json:"data"`
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}
