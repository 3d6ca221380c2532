package book

import "context"

// Repository is the data access contract for books and their
// association links.
type Repository interface {
	// List returns projected books ordered by title ascending,
	// narrowed by filter.
	List(ctx context.Context, filter Filter) ([]Detail, error)

	// GetByID returns the projected book or ErrBookNotFound.
	GetByID(ctx context.Context, id int64) (*Detail, error)

	// ISBNExists reports whether another book carries the same ISBN
	// (exact match; values are normalized to digits before this call).
	// Pass excludeID 0 on create.
	ISBNExists(ctx context.Context, isbn string, excludeID int64) (bool, error)

	// Create inserts the book's scalar row and one junction row per
	// id of each kind, all in one transaction. The id sets must
	// already be deduplicated and existence-checked.
	Create(ctx context.Context, b *Book, authorIDs, genreIDs []int64) (int64, error)

	// Update replaces the scalar fields and synchronizes both link
	// collections to exactly match the requested sets: the current
	// links are cleared and the requested ids reinserted, in the same
	// transaction as the scalar update. Returns ErrBookNotFound when
	// the book row is gone.
	Update(ctx context.Context, b *Book, authorIDs, genreIDs []int64) error

	// Delete removes the book; junction rows go with it by cascade.
	Delete(ctx context.Context, id int64) error
}
