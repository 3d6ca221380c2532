package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book"
)

type stubBookService struct {
	listResp   []book.BookResponse
	getResp    *book.BookResponse
	createResp *book.BookResponse
	updateResp *book.BookResponse
	err        error

	gotFilter book.Filter
}

func (s *stubBookService) List(_ context.Context, filter book.Filter) ([]book.BookResponse, error) {
	s.gotFilter = filter
	return s.listResp, s.err
}

func (s *stubBookService) Get(context.Context, int64) (*book.BookResponse, error) {
	return s.getResp, s.err
}

func (s *stubBookService) Create(context.Context, *book.BookRequest) (*book.BookResponse, error) {
	return s.createResp, s.err
}

func (s *stubBookService) Update(context.Context, int64, *book.BookRequest) (*book.BookResponse, error) {
	return s.updateResp, s.err
}

func (s *stubBookService) Delete(context.Context, int64) error {
	return s.err
}

func newBookRouter(svc book.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookHandler(svc)

	router := gin.New()
	router.GET("/api/books", h.List)
	router.GET("/api/books/:id", h.GetByID)
	router.POST("/api/books", h.Create)
	router.PUT("/api/books/:id", h.Update)
	router.DELETE("/api/books/:id", h.Delete)
	return router
}

func sampleBookResponse() *book.BookResponse {
	return &book.BookResponse{
		ID:              1,
		Title:           "Foundation",
		AuthorIDs:       []int64{1},
		AuthorNames:     []string{"Isaac Asimov"},
		GenreIDs:        []int64{10},
		GenreNames:      []string{"Science Fiction"},
		PublishYear:     1951,
		ISBN:            "9780553293357",
		QuantityInStock: 5,
	}
}

func validBookBody() string {
	return `{"title":"Foundation","authorIds":[1],"genreIds":[10],"publishYear":1951,"isbn":"9780553293357","quantityInStock":5}`
}

func errorMessage(t *testing.T, body string) string {
	t.Helper()
	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	return envelope.Message
}

func TestBookHandlerListPassesFilter(t *testing.T) {
	svc := &stubBookService{listResp: []book.BookResponse{*sampleBookResponse()}}
	router := newBookRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/books?search=foundation&authorId=1&genreId=10", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, book.Filter{Search: "foundation", AuthorID: 1, GenreID: 10}, svc.gotFilter)
}

func TestBookHandlerListTrimsSearch(t *testing.T) {
	svc := &stubBookService{}
	router := newBookRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/books?search=%20%20dune%20", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dune", svc.gotFilter.Search)
}

func TestBookHandlerListBadFilter(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantMsg string
	}{
		{name: "non-numeric authorId", query: "authorId=abc", wantMsg: "authorId must be greater than zero."},
		{name: "zero authorId", query: "authorId=0", wantMsg: "authorId must be greater than zero."},
		{name: "negative genreId", query: "genreId=-3", wantMsg: "genreId must be greater than zero."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newBookRouter(&stubBookService{})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/books?"+tt.query, nil)
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, w.Body.String()))
		})
	}
}

func TestBookHandlerGetByID(t *testing.T) {
	router := newBookRouter(&stubBookService{getResp: sampleBookResponse()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/books/1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authorNames":["Isaac Asimov"]`)
	assert.Contains(t, w.Body.String(), `"genreIds":[10]`)
}

func TestBookHandlerGetByIDNotFound(t *testing.T) {
	router := newBookRouter(&stubBookService{err: book.ErrBookNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/books/42", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book with id 42 was not found.", errorMessage(t, w.Body.String()))
}

func TestBookHandlerCreate(t *testing.T) {
	router := newBookRouter(&stubBookService{createResp: sampleBookResponse()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(validBookBody()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/books/1", w.Header().Get("Location"))
}

func TestBookHandlerCreateValidationFailure(t *testing.T) {
	router := newBookRouter(&stubBookService{})

	body := `{"title":"Foundation","authorIds":[],"genreIds":[10],"publishYear":1951,"isbn":"9780553293357"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "At least one author id is required.", errorMessage(t, w.Body.String()))
}

func TestBookHandlerCreateErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing author refs",
			err:        book.ErrAuthorRefMissing,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "One or more author ids do not exist.",
		},
		{
			name:       "missing genre refs",
			err:        book.ErrGenreRefMissing,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "One or more genre ids do not exist.",
		},
		{
			name:       "duplicate isbn",
			err:        book.ErrDuplicateISBN,
			wantStatus: http.StatusConflict,
			wantMsg:    "Book with ISBN '9780553293357' already exists.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newBookRouter(&stubBookService{err: tt.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(validBookBody()))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, w.Body.String()))
		})
	}
}

func TestBookHandlerUpdateNotFound(t *testing.T) {
	router := newBookRouter(&stubBookService{err: book.ErrBookNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/books/42", strings.NewReader(validBookBody()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book with id 42 was not found.", errorMessage(t, w.Body.String()))
}

func TestBookHandlerUpdate(t *testing.T) {
	router := newBookRouter(&stubBookService{updateResp: sampleBookResponse()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/books/1", strings.NewReader(validBookBody()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Foundation"`)
}

func TestBookHandlerDelete(t *testing.T) {
	router := newBookRouter(&stubBookService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/books/1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
