package client

// Author as returned by the API. BirthDate uses the yyyy-MM-dd wire
// format.
type Author struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	BirthDate string  `json:"birthDate"`
	Country   *string `json:"country,omitempty"`
}

type AuthorRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	BirthDate string  `json:"birthDate"`
	Country   *string `json:"country,omitempty"`
}

type Genre struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type GenreRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Book carries the projected association lists; authorIds and
// authorNames (and the genre pair) are index-aligned.
type Book struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	ISBN            string   `json:"isbn"`
	PublishYear     int      `json:"publishYear"`
	QuantityInStock int      `json:"quantityInStock"`
	AuthorIDs       []int64  `json:"authorIds"`
	AuthorNames     []string `json:"authorNames"`
	GenreIDs        []int64  `json:"genreIds"`
	GenreNames      []string `json:"genreNames"`
}

type BookRequest struct {
	Title           string  `json:"title"`
	ISBN            string  `json:"isbn"`
	PublishYear     int     `json:"publishYear"`
	QuantityInStock int     `json:"quantityInStock"`
	AuthorIDs       []int64 `json:"authorIds"`
	GenreIDs        []int64 `json:"genreIds"`
}

// BookListOptions narrows ListBooks. Zero values mean "no filter".
type BookListOptions struct {
	Search   string
	AuthorID int64
	GenreID  int64
}
