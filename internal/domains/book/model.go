package book

// Book holds the scalar fields persisted on the books table.
// Author and genre links live in junction rows keyed by
// (book_id, author_id) and (book_id, genre_id).
type Book struct {
	ID              int64  `json:"id" db:"id"`
	Title           string `json:"title" db:"title"`
	ISBN            string `json:"isbn" db:"isbn"`
	PublishYear     int    `json:"publishYear" db:"publish_year"`
	QuantityInStock int    `json:"quantityInStock" db:"quantity_in_stock"`
}

// Detail is a book together with its projected associations as read
// from the junction rows: ids and names are index-aligned, ordered by
// the linked entity's id.
type Detail struct {
	Book
	AuthorIDs   []int64
	AuthorNames []string
	GenreIDs    []int64
	GenreNames  []string
}

// Filter narrows the book list. Zero values disable a criterion;
// active criteria combine with AND.
type Filter struct {
	// Search matches as a case-insensitive substring of the title.
	Search string
	// AuthorID keeps books linked to this author.
	AuthorID int64
	// GenreID keeps books linked to this genre.
	GenreID int64
}
