package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaPG rebuilds the catalog schema from scratch. Every run starts with
// a destructive reset, so no data survives across runs.
type SchemaPG struct {
	db *pgxpool.Pool
}

func NewSchemaPG(db *pgxpool.Pool) *SchemaPG {
	return &SchemaPG{db: db}
}

// The drop is one statement so the association table does not block its
// referenced tables. Creation order matters: books_authors needs both
// books and authors to exist.
var schemaStatements = []string{
	`DROP TABLE IF EXISTS books, authors, books_authors`,
	`CREATE TABLE books (
		book_id serial NOT NULL PRIMARY KEY,
		title text NOT NULL,
		isbn bigint,
		description text
	)`,
	`CREATE TABLE authors (
		author_id serial NOT NULL PRIMARY KEY,
		name text NOT NULL UNIQUE
	)`,
	`CREATE TABLE books_authors (
		book_id int REFERENCES books (book_id),
		author_id int REFERENCES authors (author_id),
		CONSTRAINT books_authors_pkey PRIMARY KEY (book_id, author_id)
	)`,
}

// Rebuild drops the three catalog tables if present and recreates them
// empty. Each statement auto-commits; a failure partway through aborts the
// run rather than leaving a usable half-schema.
func (s *SchemaPG) Rebuild(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("rebuild schema: %w", err)
		}
	}
	return nil
}
