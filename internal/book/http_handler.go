package book

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"booktrace/internal/httpx"
	"booktrace/internal/pagination"
)

const (
	defaultPageSize  = 50
	maxPageSize      = 100
	defaultRankLimit = 10
	maxRankLimit     = 50
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Search handles GET /books
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := SearchQuery{
		Q: query.Get("q"),
		Filters: SearchFilters{
			Author: query.Get("author"),
			Labels: splitParam(query.Get("labels")),
			Topics: splitParam(query.Get("topics")),
			Types:  splitParam(query.Get("types")),
		},
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	q.Page = page
	q.PageSize = pageSize

	result, err := h.service.Search(r.Context(), q)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, result.Data, map[string]any{
		"page":        result.Page,
		"page_size":   result.PageSize,
		"total":       result.Total,
		"total_pages": pagination.TotalPages(result.Total, result.PageSize),
	})
}

// GetByID handles GET /books/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, b, nil)
}

// Related handles GET /books/{id}/related
func (h *HTTPHandler) Related(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	related, err := h.service.RelatedByTopics(r.Context(), b.Topics, rankLimit(r))
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, related, nil)
}

// Popular handles GET /rankings/popular
func (h *HTTPHandler) Popular(w http.ResponseWriter, r *http.Request) {
	h.ranking(w, r, h.service.Popular)
}

// Trending handles GET /rankings/trending
func (h *HTTPHandler) Trending(w http.ResponseWriter, r *http.Request) {
	h.ranking(w, r, h.service.Trending)
}

// Newest handles GET /rankings/new
func (h *HTTPHandler) Newest(w http.ResponseWriter, r *http.Request) {
	h.ranking(w, r, h.service.Newest)
}

func (h *HTTPHandler) ranking(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context, limit int) ([]Book, error)) {
	books, err := fetch(r.Context(), rankLimit(r))
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, books, nil)
}

func rankLimit(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > maxRankLimit {
		limit = defaultRankLimit
	}
	return limit
}

func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
