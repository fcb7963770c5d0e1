package catalog

// ISBNSentinel is stored in place of an isbn when the source omits one.
const ISBNSentinel = "0"

// Work is one entry from the remote search response, prior to loading.
type Work struct {
	Title       string
	ISBN        string
	Description string
	Authors     []string
}

// ISBNOrSentinel returns the work's isbn, or the sentinel when absent.
func (w Work) ISBNOrSentinel() string {
	if w.ISBN == "" {
		return ISBNSentinel
	}
	return w.ISBN
}

type Book struct {
	ID          int64
	Title       string
	ISBN        int64
	Description string
}

type Author struct {
	ID   int64
	Name string
}
