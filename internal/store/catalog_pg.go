package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrAuthorMissing reports an author name that should have been inserted
// during the author phase but has no row at link time. Callers treat it as
// an integrity failure, never as a reason to insert a null link.
var ErrAuthorMissing = errors.New("author not found")

// CatalogPG persists books, authors, and their association.
type CatalogPG struct {
	db *pgxpool.Pool
}

func NewCatalogPG(db *pgxpool.Pool) *CatalogPG {
	return &CatalogPG{db: db}
}

// InsertAuthors writes every name as a new author row in one batch. Names
// must already be deduplicated; a repeated name trips the unique
// constraint and fails the whole batch.
func (r *CatalogPG) InsertAuthors(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	const query = `INSERT INTO authors (name) VALUES ($1)`

	batch := &pgx.Batch{}
	for _, name := range names {
		batch.Queue(query, name)
	}

	results := r.db.SendBatch(ctx, batch)
	for range names {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("insert authors: %w", err)
		}
	}
	return results.Close()
}

// InsertBook writes one book row and returns its generated book_id. Rows
// go in one at a time because each id is needed immediately for linking.
func (r *CatalogPG) InsertBook(ctx context.Context, title string, isbn int64, description string) (int64, error) {
	const query = `
		INSERT INTO books (title, isbn, description)
		VALUES ($1, $2, $3)
		RETURNING book_id`

	var bookID int64
	if err := r.db.QueryRow(ctx, query, title, isbn, description).Scan(&bookID); err != nil {
		return 0, fmt.Errorf("insert book %q: %w", title, err)
	}
	return bookID, nil
}

// AuthorIDByName resolves an author name to its generated id by exact
// match. Case and whitespace are significant.
func (r *CatalogPG) AuthorIDByName(ctx context.Context, name string) (int64, error) {
	const query = `SELECT author_id FROM authors WHERE name = $1`

	var authorID int64
	err := r.db.QueryRow(ctx, query, name).Scan(&authorID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("author %q: %w", name, ErrAuthorMissing)
	}
	if err != nil {
		return 0, fmt.Errorf("select author %q: %w", name, err)
	}
	return authorID, nil
}

// LinkBookAuthor records that the given book was written by the given author.
func (r *CatalogPG) LinkBookAuthor(ctx context.Context, bookID, authorID int64) error {
	const query = `INSERT INTO books_authors (book_id, author_id) VALUES ($1, $2)`

	if _, err := r.db.Exec(ctx, query, bookID, authorID); err != nil {
		return fmt.Errorf("link book %d to author %d: %w", bookID, authorID, err)
	}
	return nil
}
