package suggest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"booktrace/internal/httpx"
	"booktrace/internal/inflight"
)

const (
	defaultLimit = 10
	maxLimit     = 25
)

type HTTPHandler struct {
	service *Service
	guard   *inflight.Guard
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service, guard: inflight.NewGuard()}
}

// Suggest handles GET /suggestions. Requests are keyed per client so a rapid
// follow-up query cancels the superseded in-flight lookup.
func (h *HTTPHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	ctx, done := h.guard.Begin(r.Context(), clientKey(r))
	defer done()

	suggestions, err := h.service.Suggest(ctx, q, limitParam(r))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			httpx.JSONErrorWithRequest(r, w, http.StatusConflict, "SUPERSEDED", "Request superseded by a newer one", nil)
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, suggestions, nil)
}

// Topics handles GET /topics
func (h *HTTPHandler) Topics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.service.Topics(r.Context(), r.URL.Query().Get("q"), limitParam(r))
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, topics, nil)
}

func clientKey(r *http.Request) string {
	if id := r.Header.Get("X-Client-Id"); id != "" {
		return id
	}
	return r.RemoteAddr
}

func limitParam(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	return limit
}
