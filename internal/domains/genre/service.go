package genre

import "context"

// Service is the business logic contract for genres.
type Service interface {
	List(ctx context.Context) ([]GenreResponse, error)
	Get(ctx context.Context, id int64) (*GenreResponse, error)
	Create(ctx context.Context, req *GenreRequest) (*GenreResponse, error)
	Update(ctx context.Context, id int64, req *GenreRequest) (*GenreResponse, error)
	Delete(ctx context.Context, id int64) error
}
