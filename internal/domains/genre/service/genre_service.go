package service

import (
	"context"
	"fmt"

	"library-backend/internal/domains/genre"
)

type genreService struct {
	repo genre.Repository
}

func NewGenreService(repo genre.Repository) genre.Service {
	return &genreService{repo: repo}
}

func (s *genreService) List(ctx context.Context) ([]genre.GenreResponse, error) {
	genres, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]genre.GenreResponse, len(genres))
	for i := range genres {
		responses[i] = *genres[i].ToResponse()
	}
	return responses, nil
}

func (s *genreService) Get(ctx context.Context, id int64) (*genre.GenreResponse, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return g.ToResponse(), nil
}

func (s *genreService) Create(ctx context.Context, req *genre.GenreRequest) (*genre.GenreResponse, error) {
	duplicate, err := s.repo.NameExists(ctx, req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check genre name: %w", err)
	}
	if duplicate {
		return nil, genre.ErrDuplicateGenre
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

func (s *genreService) Update(ctx context.Context, id int64, req *genre.GenreRequest) (*genre.GenreResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	duplicate, err := s.repo.NameExists(ctx, req.Name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check genre name: %w", err)
	}
	if duplicate {
		return nil, genre.ErrDuplicateGenre
	}

	entity := req.ToEntity()
	entity.ID = id

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

func (s *genreService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
