package main

import (
	"context"
	"net/http"
	"time"

	"booktrace/internal/book"
	"booktrace/internal/contribute"
	"booktrace/internal/httpx"
	"booktrace/internal/suggest"
)

type handlers struct {
	book       *book.HTTPHandler
	suggest    *suggest.HTTPHandler
	contribute *contribute.HTTPHandler
}

func newRouter(h handlers, rateLimit *httpx.RateLimitMiddleware, ping func(context.Context) error) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /books", h.book.Search)
	router.HandleFunc("GET /books/{id}", h.book.GetByID)
	router.HandleFunc("GET /books/{id}/related", h.book.Related)

	router.HandleFunc("GET /rankings/popular", h.book.Popular)
	router.HandleFunc("GET /rankings/trending", h.book.Trending)
	router.HandleFunc("GET /rankings/new", h.book.Newest)

	router.Handle("GET /suggestions", rateLimit.Middleware(http.HandlerFunc(h.suggest.Suggest)))
	router.HandleFunc("GET /topics", h.suggest.Topics)

	contributeChain := httpx.RequestSizeLimitMiddleware(1 << 20)(
		rateLimit.Middleware(http.HandlerFunc(h.contribute.Submit)))
	router.Handle("POST /contribute", contributeChain)

	return router
}
