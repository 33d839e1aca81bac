package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"booktrace/internal/book"
)

func strPtr(v string) *string { return &v }

// TestBook is a mock book for testing.
var TestBook = book.Book{
	ID:        "6a1f2b36-0000-4000-8000-000000000001",
	Title:     "Introduction to Algorithms",
	Author:    strPtr("Thomas H. Cormen"),
	ISBN:      strPtr("9780262046305"),
	CreatedAt: time.Now(),
	Labels:    []string{"Textbook"},
	Topics:    []string{"Algorithms"},
	Sources: []book.Source{
		{
			ID:       "6a1f2b36-0000-4000-8000-000000000101",
			BookID:   "6a1f2b36-0000-4000-8000-000000000001",
			URL:      "https://openlibrary.org/",
			Verified: true,
			AddedAt:  time.Now(),
		},
	},
}

// NewRequest creates a new HTTP request for testing.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse records the HTTP response for testing.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
