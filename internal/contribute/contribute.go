package contribute

import (
	"context"
)

// Submission is a crowdsourced book contribution. Labels and topics are
// deduplicated server-side before insert; source uniqueness is not enforced.
type Submission struct {
	Title         string        `json:"title" validate:"required,max=500"`
	Author        string        `json:"author" validate:"omitempty,max=500"`
	ISBN          string        `json:"isbn" validate:"omitempty,max=20"`
	CoverURL      string        `json:"cover_url" validate:"omitempty,url"`
	Description   string        `json:"description" validate:"omitempty,max=5000"`
	PublishedYear *int          `json:"published_year"`
	Labels        []string      `json:"labels" validate:"omitempty,dive,required,max=100"`
	Topics        []string      `json:"topics" validate:"omitempty,dive,required,max=100"`
	Sources       []SourceInput `json:"sources" validate:"omitempty,dive"`
}

// SourceInput is one external source attached to a submission.
type SourceInput struct {
	SourceName string `json:"source_name" validate:"omitempty,max=200"`
	URL        string `json:"url" validate:"required,url"`
	Type       string `json:"type" validate:"omitempty,max=50"`
	Verified   bool   `json:"verified"`
	Format     string `json:"format" validate:"omitempty,max=50"`
}

// Repository persists accepted submissions.
type Repository interface {
	// Insert writes the book and all of its labels, topics and sources in a
	// single transaction and returns the new book id.
	Insert(ctx context.Context, sub *Submission) (string, error)
}
