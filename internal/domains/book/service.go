package book

import "context"

// Service is the business logic contract for books.
type Service interface {
	List(ctx context.Context, filter Filter) ([]BookResponse, error)
	Get(ctx context.Context, id int64) (*BookResponse, error)
	Create(ctx context.Context, req *BookRequest) (*BookResponse, error)
	Update(ctx context.Context, id int64, req *BookRequest) (*BookResponse, error)
	Delete(ctx context.Context, id int64) error
}
