package author

import (
	"errors"
	"net/http"
)

var (
	ErrAuthorNotFound  = errors.New("author not found")
	ErrDuplicateAuthor = errors.New("author already exists")
)

// ToHTTPStatus maps a domain error to the status code the API reports.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateAuthor):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
