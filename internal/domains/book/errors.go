package book

import (
	"errors"
	"net/http"
)

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrDuplicateISBN = errors.New("book with this ISBN already exists")

	// Reference errors: a requested association id has no matching row.
	// Surfaced as client errors, not conflicts.
	ErrAuthorRefMissing = errors.New("one or more author ids do not exist")
	ErrGenreRefMissing  = errors.New("one or more genre ids do not exist")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateISBN):
		return http.StatusConflict
	case errors.Is(err, ErrAuthorRefMissing), errors.Is(err, ErrGenreRefMissing):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
