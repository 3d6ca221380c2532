package service

import (
	"context"
	"fmt"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/genre"
)

// bookService implements book.Service. It owns the cross-entity checks
// (referenced authors and genres must exist, ISBN must be unique) and
// hands the repository clean, deduplicated id sets.
type bookService struct {
	repo       book.Repository
	authorRepo author.Repository
	genreRepo  genre.Repository
}

func NewBookService(repo book.Repository, authorRepo author.Repository, genreRepo genre.Repository) book.Service {
	return &bookService{
		repo:       repo,
		authorRepo: authorRepo,
		genreRepo:  genreRepo,
	}
}

func (s *bookService) List(ctx context.Context, filter book.Filter) ([]book.BookResponse, error) {
	details, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]book.BookResponse, len(details))
	for i := range details {
		responses[i] = *details[i].ToResponse()
	}
	return responses, nil
}

func (s *bookService) Get(ctx context.Context, id int64) (*book.BookResponse, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return d.ToResponse(), nil
}

func (s *bookService) Create(ctx context.Context, req *book.BookRequest) (*book.BookResponse, error) {
	authorIDs := dedupIDs(req.AuthorIDs)
	genreIDs := dedupIDs(req.GenreIDs)

	if err := s.checkReferences(ctx, authorIDs, genreIDs); err != nil {
		return nil, err
	}
	if err := s.checkISBN(ctx, req.ISBN, 0); err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, req.ToEntity(), authorIDs, genreIDs)
	if err != nil {
		return nil, err
	}

	// Re-read so the response carries the projected name lists.
	created, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

func (s *bookService) Update(ctx context.Context, id int64, req *book.BookRequest) (*book.BookResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	authorIDs := dedupIDs(req.AuthorIDs)
	genreIDs := dedupIDs(req.GenreIDs)

	if err := s.checkReferences(ctx, authorIDs, genreIDs); err != nil {
		return nil, err
	}
	if err := s.checkISBN(ctx, req.ISBN, id); err != nil {
		return nil, err
	}

	entity := req.ToEntity()
	entity.ID = id

	if err := s.repo.Update(ctx, entity, authorIDs, genreIDs); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// checkReferences verifies every referenced author and genre id exists.
// A distinct count mismatch means at least one id is missing.
func (s *bookService) checkReferences(ctx context.Context, authorIDs, genreIDs []int64) error {
	count, err := s.authorRepo.CountByIDs(ctx, authorIDs)
	if err != nil {
		return fmt.Errorf("failed to check author ids: %w", err)
	}
	if count != len(authorIDs) {
		return book.ErrAuthorRefMissing
	}

	count, err = s.genreRepo.CountByIDs(ctx, genreIDs)
	if err != nil {
		return fmt.Errorf("failed to check genre ids: %w", err)
	}
	if count != len(genreIDs) {
		return book.ErrGenreRefMissing
	}

	return nil
}

func (s *bookService) checkISBN(ctx context.Context, isbn string, excludeID int64) error {
	duplicate, err := s.repo.ISBNExists(ctx, isbn, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check ISBN: %w", err)
	}
	if duplicate {
		return book.ErrDuplicateISBN
	}
	return nil
}

// dedupIDs drops repeated ids, keeping first-occurrence order.
func dedupIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
