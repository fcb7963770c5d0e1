package ingest

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"bookbootstrap/internal/catalog"
	"bookbootstrap/internal/platform/oreilly"
)

type Config struct {
	Topic  string
	Limit  int
	Fields []string
}

type CatalogClient interface {
	SearchWorks(ctx context.Context, topic string, limit int, fields []string) ([]oreilly.Result, error)
}

type SchemaManager interface {
	Rebuild(ctx context.Context) error
}

type CatalogRepo interface {
	InsertAuthors(ctx context.Context, names []string) error
	InsertBook(ctx context.Context, title string, isbn int64, description string) (int64, error)
	AuthorIDByName(ctx context.Context, name string) (int64, error)
	LinkBookAuthor(ctx context.Context, bookID, authorID int64) error
}

// Service runs the bootstrap pipeline: schema rebuild, one catalog fetch,
// author dedup, then the three load phases in order. The ordering is
// load-bearing: every author row must exist before the first link insert,
// and each book row before its own links. The first error from any phase
// stops the run; only the caller decides to exit the process.
type Service struct {
	client CatalogClient
	schema SchemaManager
	repo   CatalogRepo
	cfg    Config
}

func NewService(client CatalogClient, schema SchemaManager, repo CatalogRepo, cfg Config) *Service {
	return &Service{
		client: client,
		schema: schema,
		repo:   repo,
		cfg:    cfg,
	}
}

func (s *Service) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	if err := s.schema.Rebuild(ctx); err != nil {
		return sum, err
	}

	results, err := s.client.SearchWorks(ctx, s.cfg.Topic, s.cfg.Limit, s.cfg.Fields)
	if err != nil {
		return sum, err
	}
	works := mapResults(results)
	sum.WorksFetched = len(works)
	log.Printf("fetched %d works for topic %q", len(works), s.cfg.Topic)

	authors := catalog.DedupAuthors(works)
	if err := s.repo.InsertAuthors(ctx, authors); err != nil {
		return sum, err
	}
	sum.AuthorsInserted = len(authors)
	log.Printf("inserted %d distinct authors", len(authors))

	for _, w := range works {
		isbn, err := parseISBN(w)
		if err != nil {
			return sum, err
		}

		bookID, err := s.repo.InsertBook(ctx, w.Title, isbn, w.Description)
		if err != nil {
			return sum, err
		}
		sum.BooksInserted++

		for _, name := range w.Authors {
			authorID, err := s.repo.AuthorIDByName(ctx, name)
			if err != nil {
				return sum, err
			}
			if err := s.repo.LinkBookAuthor(ctx, bookID, authorID); err != nil {
				return sum, err
			}
			sum.LinksInserted++
		}
	}

	log.Printf("inserted %d books and %d book-author links", sum.BooksInserted, sum.LinksInserted)
	return sum, nil
}

func mapResults(results []oreilly.Result) []catalog.Work {
	works := make([]catalog.Work, len(results))
	for i, r := range results {
		works[i] = catalog.Work{
			Title:       r.Title,
			ISBN:        r.ISBN,
			Description: r.Description,
			Authors:     r.Authors,
		}
	}
	return works
}

func parseISBN(w catalog.Work) (int64, error) {
	isbn, err := strconv.ParseInt(w.ISBNOrSentinel(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("work %q has non-numeric isbn %q: %w", w.Title, w.ISBN, err)
	}
	return isbn, nil
}
