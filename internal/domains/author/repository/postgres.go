package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/author"
)

// postgresRepository implements author.Repository with raw SQL on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]author.Author, error) {
	query := `
        SELECT id, first_name, last_name, birth_date, country
        FROM authors
        ORDER BY last_name ASC, first_name ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.BirthDate, &a.Country); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	query := `
        SELECT id, first_name, last_name, birth_date, country
        FROM authors
        WHERE id = $1
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.FirstName, &a.LastName, &a.BirthDate, &a.Country)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) NameExists(ctx context.Context, firstName, lastName string, excludeID int64) (bool, error) {
	query := `
        SELECT EXISTS(
            SELECT 1 FROM authors
            WHERE LOWER(first_name) = LOWER($1)
              AND LOWER(last_name) = LOWER($2)
              AND id <> $3
        )
    `

	var exists bool
	if err := r.pool.QueryRow(ctx, query, firstName, lastName, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author name: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) CountByIDs(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `SELECT COUNT(*) FROM authors WHERE id = ANY($1)`

	var count int
	if err := r.pool.QueryRow(ctx, query, ids).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}

	return count, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (first_name, last_name, birth_date, country)
        VALUES ($1, $2, $3, $4)
        RETURNING id, first_name, last_name, birth_date, country
    `

	var created author.Author
	err := r.pool.QueryRow(ctx, query, a.FirstName, a.LastName, a.BirthDate, a.Country).Scan(
		&created.ID,
		&created.FirstName,
		&created.LastName,
		&created.BirthDate,
		&created.Country,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET first_name = $1, last_name = $2, birth_date = $3, country = $4
        WHERE id = $5
        RETURNING id, first_name, last_name, birth_date, country
    `

	var updated author.Author
	err := r.pool.QueryRow(ctx, query, a.FirstName, a.LastName, a.BirthDate, a.Country, a.ID).Scan(
		&updated.ID,
		&updated.FirstName,
		&updated.LastName,
		&updated.BirthDate,
		&updated.Country,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}
