package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"booktrace/internal/book"
	"booktrace/internal/contribute"
	"booktrace/internal/httpx"
	"booktrace/internal/suggest"
	"booktrace/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type stubSuggestRepo struct{}

func (stubSuggestRepo) TitleMatches(ctx context.Context, q string, limit int) ([]string, error) {
	return []string{"Introduction to Algorithms"}, nil
}
func (stubSuggestRepo) AuthorMatches(ctx context.Context, q string, limit int) ([]string, error) {
	return nil, nil
}
func (stubSuggestRepo) TopicMatches(ctx context.Context, q string, limit int) ([]string, error) {
	return nil, nil
}
func (stubSuggestRepo) Topics(ctx context.Context, q string, limit int) ([]string, error) {
	return []string{"Algorithms"}, nil
}

type stubContributeRepo struct{}

func (stubContributeRepo) Insert(ctx context.Context, sub *contribute.Submission) (string, error) {
	return "stub-id", nil
}

func newTestServer(t *testing.T, repo book.Repository) *httptest.Server {
	t.Helper()
	h := handlers{
		book:       book.NewHTTPHandler(book.NewService(repo)),
		suggest:    suggest.NewHTTPHandler(suggest.NewService(stubSuggestRepo{})),
		contribute: contribute.NewHTTPHandler(contribute.NewService(stubContributeRepo{})),
	}
	rateLimit := httpx.NewRateLimitMiddleware(100, 100)
	router := newRouter(h, rateLimit, func(context.Context) error { return nil })
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestRouting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := book.NewMockRepository(ctrl)

	repo.EXPECT().Search(gomock.Any(), gomock.Any()).Return(book.Page{
		Data: []book.Book{testutil.TestBook}, Total: 1, Page: 1, PageSize: 50,
	}, nil).AnyTimes()
	repo.EXPECT().GetByID(gomock.Any(), testutil.TestBook.ID).Return(testutil.TestBook, nil).AnyTimes()
	repo.EXPECT().Window(gomock.Any(), gomock.Any(), gomock.Any()).Return([]book.Book{testutil.TestBook}, nil).AnyTimes()
	repo.EXPECT().Newest(gomock.Any(), gomock.Any()).Return([]book.Book{testutil.TestBook}, nil).AnyTimes()

	srv := newTestServer(t, repo)

	get := func(path string) int {
		resp, err := http.Get(srv.URL + path)
		assert.NoError(t, err)
		defer resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusOK, get("/healthz"))
	assert.Equal(t, http.StatusOK, get("/readyz"))
	assert.Equal(t, http.StatusOK, get("/books?q=Algorithms"))
	assert.Equal(t, http.StatusOK, get("/books/"+testutil.TestBook.ID))
	assert.Equal(t, http.StatusOK, get("/rankings/popular"))
	assert.Equal(t, http.StatusOK, get("/rankings/trending"))
	assert.Equal(t, http.StatusOK, get("/rankings/new"))
	assert.Equal(t, http.StatusOK, get("/suggestions?q=algo"))
	assert.Equal(t, http.StatusOK, get("/topics"))
}

func TestRouting_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	srv := newTestServer(t, book.NewMockRepository(ctrl))

	resp, err := http.Post(srv.URL+"/books", "application/json", nil)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
