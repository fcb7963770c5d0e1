package ingest

// Summary reports what a completed run wrote. On a failed run it reflects
// whatever the last successful statement committed.
type Summary struct {
	WorksFetched    int
	AuthorsInserted int
	BooksInserted   int
	LinksInserted   int
}
