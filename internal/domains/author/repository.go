package author

import "context"

// Repository is the data access contract for authors.
type Repository interface {
	// List returns all authors ordered by (last name, first name) ascending.
	List(ctx context.Context) ([]Author, error)

	// GetByID returns ErrAuthorNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// NameExists reports whether another author carries the same
	// trimmed, case-insensitive (first, last) name pair.
	// excludeID skips the author being updated; pass 0 on create.
	NameExists(ctx context.Context, firstName, lastName string, excludeID int64) (bool, error)

	// CountByIDs returns how many of the given distinct ids exist.
	// Callers compare the count against len(ids) to detect dangling references.
	CountByIDs(ctx context.Context, ids []int64) (int, error)

	Create(ctx context.Context, a *Author) (*Author, error)

	// Update replaces every scalar field; returns ErrAuthorNotFound
	// when the row is gone.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the author; book links are removed by cascade.
	Delete(ctx context.Context, id int64) error
}
