package author

import "context"

// Service is the business logic contract for authors.
// Requests are expected to be normalized and validated by the caller.
type Service interface {
	List(ctx context.Context) ([]AuthorResponse, error)
	Get(ctx context.Context, id int64) (*AuthorResponse, error)
	Create(ctx context.Context, req *AuthorRequest) (*AuthorResponse, error)
	Update(ctx context.Context, id int64, req *AuthorRequest) (*AuthorResponse, error)
	Delete(ctx context.Context, id int64) error
}
