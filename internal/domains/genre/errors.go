package genre

import (
	"errors"
	"net/http"
)

var (
	ErrGenreNotFound  = errors.New("genre not found")
	ErrDuplicateGenre = errors.New("genre already exists")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrGenreNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateGenre):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
