package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/types"
)

// stubAuthorService returns canned values per call.
type stubAuthorService struct {
	listResp   []author.AuthorResponse
	getResp    *author.AuthorResponse
	createResp *author.AuthorResponse
	updateResp *author.AuthorResponse
	err        error
}

func (s *stubAuthorService) List(context.Context) ([]author.AuthorResponse, error) {
	return s.listResp, s.err
}

func (s *stubAuthorService) Get(context.Context, int64) (*author.AuthorResponse, error) {
	return s.getResp, s.err
}

func (s *stubAuthorService) Create(context.Context, *author.AuthorRequest) (*author.AuthorResponse, error) {
	return s.createResp, s.err
}

func (s *stubAuthorService) Update(context.Context, int64, *author.AuthorRequest) (*author.AuthorResponse, error) {
	return s.updateResp, s.err
}

func (s *stubAuthorService) Delete(context.Context, int64) error {
	return s.err
}

func newAuthorRouter(svc author.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthorHandler(svc)

	router := gin.New()
	router.GET("/api/authors", h.List)
	router.GET("/api/authors/:id", h.GetByID)
	router.POST("/api/authors", h.Create)
	router.PUT("/api/authors/:id", h.Update)
	router.DELETE("/api/authors/:id", h.Delete)
	return router
}

func sampleAuthorResponse() *author.AuthorResponse {
	return &author.AuthorResponse{
		ID:        1,
		FirstName: "Isaac",
		LastName:  "Asimov",
		BirthDate: types.NewDate(1920, time.January, 2),
	}
}

func errorMessage(t *testing.T, body string) string {
	t.Helper()
	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	return envelope.Message
}

func TestAuthorHandlerList(t *testing.T) {
	router := newAuthorRouter(&stubAuthorService{
		listResp: []author.AuthorResponse{*sampleAuthorResponse()},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/authors", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var authors []author.AuthorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &authors))
	require.Len(t, authors, 1)
	assert.Equal(t, "Asimov", authors[0].LastName)
}

func TestAuthorHandlerGetByID(t *testing.T) {
	router := newAuthorRouter(&stubAuthorService{getResp: sampleAuthorResponse()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/authors/1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"birthDate":"1920-01-02"`)
}

func TestAuthorHandlerGetByIDNotFound(t *testing.T) {
	router := newAuthorRouter(&stubAuthorService{err: author.ErrAuthorNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/authors/42", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Author with id 42 was not found.", errorMessage(t, w.Body.String()))
}

// Ids that do not parse as integers are reported as not found, with
// the raw path segment in the message.
func TestAuthorHandlerGetByIDNonNumeric(t *testing.T) {
	router := newAuthorRouter(&stubAuthorService{getResp: sampleAuthorResponse()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/authors/abc", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Author with id abc was not found.", errorMessage(t, w.Body.String()))
}

func TestAuthorHandlerCreate(t *testing.T) {
	router := newAuthorRouter(&stubAuthorService{createResp: sampleAuthorResponse()})

	body := `{"firstName":"Isaac","lastName":"Asimov","birthDate":"1920-01-02"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/authors", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/authors/1", w.Header().Get("Location"))
}

func TestAuthorHandlerCreateMalformedBody(t *testing.T) {
	router := newAuthorRouter(&stubAuthorService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/authors", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body.", errorMessage(t, w.Body.String()))
}

func TestAuthorHandlerCreateValidationFailure(t *testing.T) {
	router := newAuthorRouter(&stubAuthorService{})

	body := `{"firstName":"","lastName":"Asimov","birthDate":"1920-01-02"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/authors", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "FirstName is required.", errorMessage(t, w.Body.String()))
}

func TestAuthorHandlerCreateDuplicate(t *testing.T) {
	router := newAuthorRouter(&stubAuthorService{err: author.ErrDuplicateAuthor})

	body := `{"firstName":"Isaac","lastName":"Asimov","birthDate":"1920-01-02"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/authors", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Author 'Isaac Asimov' already exists.", errorMessage(t, w.Body.String()))
}

func TestAuthorHandlerUpdateNotFound(t *testing.T) {
	router := newAuthorRouter(&stubAuthorService{err: author.ErrAuthorNotFound})

	body := `{"firstName":"Isaac","lastName":"Asimov","birthDate":"1920-01-02"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/authors/42", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Author with id 42 was not found.", errorMessage(t, w.Body.String()))
}

func TestAuthorHandlerDelete(t *testing.T) {
	router := newAuthorRouter(&stubAuthorService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/authors/1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestAuthorHandlerDeleteNotFound(t *testing.T) {
	router := newAuthorRouter(&stubAuthorService{err: author.ErrAuthorNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/authors/42", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
