package genre

import "context"

// Repository is the data access contract for genres.
type Repository interface {
	// List returns all genres ordered by name ascending.
	List(ctx context.Context) ([]Genre, error)

	GetByID(ctx context.Context, id int64) (*Genre, error)

	// NameExists reports whether another genre carries the same
	// trimmed, case-insensitive name. Pass excludeID 0 on create.
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)

	// CountByIDs returns how many of the given distinct ids exist.
	CountByIDs(ctx context.Context, ids []int64) (int, error)

	Create(ctx context.Context, g *Genre) (*Genre, error)
	Update(ctx context.Context, g *Genre) (*Genre, error)
	Delete(ctx context.Context, id int64) error
}
