package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/utils"
	"library-backend/pkg/database"
)

// postgresRepository implements book.Repository with raw SQL on pgxpool.
// Association writes run inside pkg/database.WithTransaction so the
// scalar row and the junction rows change as one unit.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

// projectionColumns reads the scalar fields plus both association
// projections. The id and name subqueries share an ordering (the linked
// entity's id) so the two arrays stay index-aligned.
const projectionColumns = `
    b.id,
    b.title,
    b.isbn,
    b.publish_year,
    b.quantity_in_stock,
    COALESCE((SELECT array_agg(ba.author_id ORDER BY ba.author_id)
              FROM book_authors ba
              WHERE ba.book_id = b.id), '{}') AS author_ids,
    COALESCE((SELECT array_agg(BTRIM(a.first_name || ' ' || a.last_name) ORDER BY a.id)
              FROM book_authors ba
              JOIN authors a ON a.id = ba.author_id
              WHERE ba.book_id = b.id), '{}') AS author_names,
    COALESCE((SELECT array_agg(bg.genre_id ORDER BY bg.genre_id)
              FROM book_genres bg
              WHERE bg.book_id = b.id), '{}') AS genre_ids,
    COALESCE((SELECT array_agg(g.name ORDER BY g.id)
              FROM book_genres bg
              JOIN genres g ON g.id = bg.genre_id
              WHERE bg.book_id = b.id), '{}') AS genre_names
`

func scanDetail(row pgx.Row) (*book.Detail, error) {
	var d book.Detail
	err := row.Scan(
		&d.ID,
		&d.Title,
		&d.ISBN,
		&d.PublishYear,
		&d.QuantityInStock,
		&d.AuthorIDs,
		&d.AuthorNames,
		&d.GenreIDs,
		&d.GenreNames,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// buildWhereClause turns the filter into SQL clauses plus bind args.
func buildWhereClause(filter book.Filter) (string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		clauses = append(clauses, fmt.Sprintf("b.title ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	if filter.AuthorID > 0 {
		clauses = append(clauses, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM book_authors ba WHERE ba.book_id = b.id AND ba.author_id = $%d)", argPos))
		args = append(args, filter.AuthorID)
		argPos++
	}

	if filter.GenreID > 0 {
		clauses = append(clauses, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM book_genres bg WHERE bg.book_id = b.id AND bg.genre_id = $%d)", argPos))
		args = append(args, filter.GenreID)
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + utils.JoinWithAnd(clauses), args
}

func (r *postgresRepository) List(ctx context.Context, filter book.Filter) ([]book.Detail, error) {
	whereClause, args := buildWhereClause(filter)

	query := "SELECT " + projectionColumns + " FROM books b" + whereClause + " ORDER BY b.title ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	details := []book.Detail{}
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		details = append(details, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return details, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*book.Detail, error) {
	query := "SELECT " + projectionColumns + " FROM books b WHERE b.id = $1"

	d, err := scanDetail(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return d, nil
}

func (r *postgresRepository) ISBNExists(ctx context.Context, isbn string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1 AND id <> $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, isbn, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check ISBN: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book, authorIDs, genreIDs []int64) (int64, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		query := `
            INSERT INTO books (title, isbn, publish_year, quantity_in_stock)
            VALUES ($1, $2, $3, $4)
            RETURNING id
        `

		var id int64
		err := tx.QueryRow(ctx, query, b.Title, b.ISBN, b.PublishYear, b.QuantityInStock).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("failed to create book: %w", err)
		}

		if err := insertLinks(ctx, tx, id, authorIDs, genreIDs); err != nil {
			return 0, err
		}

		return id, nil
	})
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book, authorIDs, genreIDs []int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
            UPDATE books
            SET title = $1, isbn = $2, publish_year = $3, quantity_in_stock = $4
            WHERE id = $5
        `

		cmdTag, err := tx.Exec(ctx, query, b.Title, b.ISBN, b.PublishYear, b.QuantityInStock, b.ID)
		if err != nil {
			return fmt.Errorf("failed to update book: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return book.ErrBookNotFound
		}

		// Full replace: clear both link collections, then reinsert the
		// requested sets. Link rows carry no state beyond the two keys,
		// so no diffing is needed.
		if _, err := tx.Exec(ctx, `DELETE FROM book_authors WHERE book_id = $1`, b.ID); err != nil {
			return fmt.Errorf("failed to clear author links: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM book_genres WHERE book_id = $1`, b.ID); err != nil {
			return fmt.Errorf("failed to clear genre links: %w", err)
		}

		return insertLinks(ctx, tx, b.ID, authorIDs, genreIDs)
	})
}

func insertLinks(ctx context.Context, tx pgx.Tx, bookID int64, authorIDs, genreIDs []int64) error {
	for _, authorID := range authorIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO book_authors (book_id, author_id) VALUES ($1, $2)`, bookID, authorID)
		if err != nil {
			return fmt.Errorf("failed to link author %d: %w", authorID, err)
		}
	}

	for _, genreID := range genreIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO book_genres (book_id, genre_id) VALUES ($1, $2)`, bookID, genreID)
		if err != nil {
			return fmt.Errorf("failed to link genre %d: %w", genreID, err)
		}
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}
