package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/genre"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) genre.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]genre.Genre, error) {
	query := `
        SELECT id, name, description
        FROM genres
        ORDER BY name ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	genres := []genre.Genre{}
	for rows.Next() {
		var g genre.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.Description); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genres: %w", err)
	}

	return genres, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*genre.Genre, error) {
	query := `SELECT id, name, description FROM genres WHERE id = $1`

	var g genre.Genre
	err := r.pool.QueryRow(ctx, query, id).Scan(&g.ID, &g.Name, &g.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre by id: %w", err)
	}

	return &g, nil
}

func (r *postgresRepository) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := `
        SELECT EXISTS(
            SELECT 1 FROM genres
            WHERE LOWER(name) = LOWER($1) AND id <> $2
        )
    `

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check genre name: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) CountByIDs(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `SELECT COUNT(*) FROM genres WHERE id = ANY($1)`

	var count int
	if err := r.pool.QueryRow(ctx, query, ids).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count genres: %w", err)
	}

	return count, nil
}

func (r *postgresRepository) Create(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	query := `
        INSERT INTO genres (name, description)
        VALUES ($1, $2)
        RETURNING id, name, description
    `

	var created genre.Genre
	err := r.pool.QueryRow(ctx, query, g.Name, g.Description).Scan(&created.ID, &created.Name, &created.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	query := `
        UPDATE genres
        SET name = $1, description = $2
        WHERE id = $3
        RETURNING id, name, description
    `

	var updated genre.Genre
	err := r.pool.QueryRow(ctx, query, g.Name, g.Description, g.ID).Scan(&updated.ID, &updated.Name, &updated.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to update genre: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete genre: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return genre.ErrGenreNotFound
	}

	return nil
}
