package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Junction rows carry no state beyond the two foreign keys; the composite
// primary key doubles as the duplicate-link guard. Cascade on both sides:
// deleting a book, an author or a genre removes the rows that reference it.
//
// Name and ISBN uniqueness is deliberately NOT enforced here; the service
// layer performs case-insensitive duplicate checks before every write.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id          BIGSERIAL PRIMARY KEY,
		first_name  VARCHAR(100) NOT NULL,
		last_name   VARCHAR(100) NOT NULL,
		birth_date  DATE NOT NULL,
		country     VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS genres (
		id          BIGSERIAL PRIMARY KEY,
		name        VARCHAR(100) NOT NULL,
		description VARCHAR(500)
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id                BIGSERIAL PRIMARY KEY,
		title             VARCHAR(200) NOT NULL,
		isbn              VARCHAR(13) NOT NULL,
		publish_year      INTEGER NOT NULL,
		quantity_in_stock INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS book_authors (
		book_id   BIGINT NOT NULL REFERENCES books(id) ON DELETE CASCADE,
		author_id BIGINT NOT NULL REFERENCES authors(id) ON DELETE CASCADE,
		PRIMARY KEY (book_id, author_id)
	)`,
	`CREATE TABLE IF NOT EXISTS book_genres (
		book_id  BIGINT NOT NULL REFERENCES books(id) ON DELETE CASCADE,
		genre_id BIGINT NOT NULL REFERENCES genres(id) ON DELETE CASCADE,
		PRIMARY KEY (book_id, genre_id)
	)`,
}

// EnsureSchema creates the catalog tables if they are missing.
// Safe to run on every startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
