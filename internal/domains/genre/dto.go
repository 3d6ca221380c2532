package genre

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

// GenreRequest - POST /api/genres and PUT /api/genres/:id.
type GenreRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r *GenreRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Description != nil {
		trimmed := strings.TrimSpace(*r.Description)
		if trimmed == "" {
			r.Description = nil
		} else {
			r.Description = &trimmed
		}
	}
}

// Validate checks the fields in fixed order and reports the first failure.
func (r GenreRequest) Validate() error {
	if err := validation.Validate(r.Name,
		validation.Required.Error("Name is required."),
		validation.RuneLength(0, MaxNameLength).Error("Name must be at most 100 characters."),
	); err != nil {
		return err
	}
	if r.Description != nil {
		if err := validation.Validate(*r.Description,
			validation.RuneLength(0, MaxDescriptionLength).Error("Description must be at most 500 characters."),
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *GenreRequest) ToEntity() *Genre {
	return &Genre{
		Name:        r.Name,
		Description: r.Description,
	}
}

// GenreResponse mirrors the stored scalar fields exactly.
type GenreResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (g *Genre) ToResponse() *GenreResponse {
	return &GenreResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
	}
}
