package author

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/shared/types"
)

const (
	MaxNameLength    = 100
	MaxCountryLength = 100
)

// AuthorRequest - POST /api/authors and PUT /api/authors/:id.
// Updates are full replacements; every field is resubmitted.
type AuthorRequest struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	BirthDate types.Date `json:"birthDate"`
	Country   *string    `json:"country,omitempty"`
}

// Normalize trims all string fields before validation and persistence.
// A country that is blank after trimming becomes absent.
func (r *AuthorRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	if r.Country != nil {
		trimmed := strings.TrimSpace(*r.Country)
		if trimmed == "" {
			r.Country = nil
		} else {
			r.Country = &trimmed
		}
	}
}

// Validate checks the fields in fixed order and reports the first failure.
func (r AuthorRequest) Validate() error {
	if err := validation.Validate(r.FirstName,
		validation.Required.Error("FirstName is required."),
		validation.RuneLength(0, MaxNameLength).Error("FirstName must be at most 100 characters."),
	); err != nil {
		return err
	}
	if err := validation.Validate(r.LastName,
		validation.Required.Error("LastName is required."),
		validation.RuneLength(0, MaxNameLength).Error("LastName must be at most 100 characters."),
	); err != nil {
		return err
	}
	if err := validation.Validate(r.BirthDate,
		validation.By(requiredDate("BirthDate is required.")),
	); err != nil {
		return err
	}
	if r.Country != nil {
		if err := validation.Validate(*r.Country,
			validation.RuneLength(0, MaxCountryLength).Error("Country must be at most 100 characters."),
		); err != nil {
			return err
		}
	}
	return nil
}

// requiredDate rejects the zero date. ozzo's Required does not treat
// a wrapper struct around time.Time as empty, so this is explicit.
func requiredDate(message string) validation.RuleFunc {
	return func(value interface{}) error {
		d, ok := value.(types.Date)
		if !ok || d.IsZero() {
			return validation.NewError("validation_required", message)
		}
		return nil
	}
}

// ToEntity converts a normalized request to an Author entity.
func (r *AuthorRequest) ToEntity() *Author {
	return &Author{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		BirthDate: r.BirthDate,
		Country:   r.Country,
	}
}

// AuthorResponse mirrors the stored scalar fields exactly.
type AuthorResponse struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	BirthDate types.Date `json:"birthDate"`
	Country   *string    `json:"country"`
}

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		BirthDate: a.BirthDate,
		Country:   a.Country,
	}
}
