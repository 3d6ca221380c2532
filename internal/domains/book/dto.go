package book

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxTitleLength = 200
	MinPublishYear = 1
	MaxPublishYear = 9999
)

// ISBNs are digits only, between 1 and 13 of them.
var isbnPattern = regexp.MustCompile(`^\d{1,13}$`)

// BookRequest - POST /api/books and PUT /api/books/:id.
// Updates are full replacements: scalar fields and both association
// sets are resubmitted in their entirety.
type BookRequest struct {
	Title           string  `json:"title"`
	AuthorIDs       []int64 `json:"authorIds"`
	GenreIDs        []int64 `json:"genreIds"`
	PublishYear     int     `json:"publishYear"`
	ISBN            string  `json:"isbn"`
	QuantityInStock int     `json:"quantityInStock"`
}

func (r *BookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.ISBN = strings.TrimSpace(r.ISBN)
}

// Validate checks the fields in fixed order and reports the first failure:
// title, isbn, author ids, genre ids, publish year, quantity.
func (r BookRequest) Validate() error {
	if err := validation.Validate(r.Title,
		validation.Required.Error("Title is required."),
		validation.RuneLength(0, MaxTitleLength).Error("Title must be at most 200 characters."),
	); err != nil {
		return err
	}
	if err := validation.Validate(r.ISBN,
		validation.Required.Error("ISBN is required."),
		validation.Match(isbnPattern).Error("ISBN must be 1 to 13 digits."),
	); err != nil {
		return err
	}
	if err := validation.Validate(r.AuthorIDs,
		validation.Required.Error("At least one author id is required."),
		validation.By(allPositive("Author ids must be positive integers.")),
	); err != nil {
		return err
	}
	if err := validation.Validate(r.GenreIDs,
		validation.Required.Error("At least one genre id is required."),
		validation.By(allPositive("Genre ids must be positive integers.")),
	); err != nil {
		return err
	}
	if err := validation.Validate(r.PublishYear,
		validation.By(yearInRange("PublishYear must be between 1 and 9999.")),
	); err != nil {
		return err
	}
	if err := validation.Validate(r.QuantityInStock,
		validation.Min(0).Error("QuantityInStock cannot be negative."),
	); err != nil {
		return err
	}
	return nil
}

// yearInRange checks the [MinPublishYear, MaxPublishYear] bounds.
// ozzo's Min/Max skip zero values entirely, so 0 would slip through them.
func yearInRange(message string) validation.RuleFunc {
	return func(value interface{}) error {
		year, ok := value.(int)
		if !ok || year < MinPublishYear || year > MaxPublishYear {
			return validation.NewError("validation_publish_year", message)
		}
		return nil
	}
}

func allPositive(message string) validation.RuleFunc {
	return func(value interface{}) error {
		ids, ok := value.([]int64)
		if !ok {
			return validation.NewError("validation_positive_ids", message)
		}
		for _, id := range ids {
			if id <= 0 {
				return validation.NewError("validation_positive_ids", message)
			}
		}
		return nil
	}
}

// ToEntity converts the scalar fields of a normalized request.
func (r *BookRequest) ToEntity() *Book {
	return &Book{
		Title:           r.Title,
		ISBN:            r.ISBN,
		PublishYear:     r.PublishYear,
		QuantityInStock: r.QuantityInStock,
	}
}

// BookResponse flattens a book and its associations. AuthorNames and
// GenreNames are index-aligned with AuthorIDs and GenreIDs.
type BookResponse struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	AuthorIDs       []int64  `json:"authorIds"`
	AuthorNames     []string `json:"authorNames"`
	GenreIDs        []int64  `json:"genreIds"`
	GenreNames      []string `json:"genreNames"`
	PublishYear     int      `json:"publishYear"`
	ISBN            string   `json:"isbn"`
	QuantityInStock int      `json:"quantityInStock"`
}

func (d *Detail) ToResponse() *BookResponse {
	return &BookResponse{
		ID:              d.ID,
		Title:           d.Title,
		AuthorIDs:       d.AuthorIDs,
		AuthorNames:     d.AuthorNames,
		GenreIDs:        d.GenreIDs,
		GenreNames:      d.GenreNames,
		PublishYear:     d.PublishYear,
		ISBN:            d.ISBN,
		QuantityInStock: d.QuantityInStock,
	}
}
