package service

import (
	"context"
	"fmt"

	"library-backend/internal/domains/author"
)

// authorService implements author.Service on top of the repository.
type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context) ([]author.AuthorResponse, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]author.AuthorResponse, len(authors))
	for i := range authors {
		responses[i] = *authors[i].ToResponse()
	}
	return responses, nil
}

func (s *authorService) Get(ctx context.Context, id int64) (*author.AuthorResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.ToResponse(), nil
}

func (s *authorService) Create(ctx context.Context, req *author.AuthorRequest) (*author.AuthorResponse, error) {
	duplicate, err := s.repo.NameExists(ctx, req.FirstName, req.LastName, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check author name: %w", err)
	}
	if duplicate {
		return nil, author.ErrDuplicateAuthor
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

func (s *authorService) Update(ctx context.Context, id int64, req *author.AuthorRequest) (*author.AuthorResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	duplicate, err := s.repo.NameExists(ctx, req.FirstName, req.LastName, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check author name: %w", err)
	}
	if duplicate {
		return nil, author.ErrDuplicateAuthor
	}

	entity := req.ToEntity()
	entity.ID = id

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
