package author

import (
	"strings"

	"library-backend/internal/shared/types"
)

// Author is the domain entity, independent of transport concerns.
type Author struct {
	ID        int64      `json:"id" db:"id"`
	FirstName string     `json:"firstName" db:"first_name"`
	LastName  string     `json:"lastName" db:"last_name"`
	BirthDate types.Date `json:"birthDate" db:"birth_date"`
	Country   *string    `json:"country" db:"country"`
}

// FullName is the projection used by book responses: trimmed "first last".
func (a *Author) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
