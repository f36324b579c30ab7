// Package pagination slices ordered, already-formatted result sets
// into fixed-size pages and computes navigation metadata.
package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// ItemsPerPage is the fixed page size for all paginated listings.
const ItemsPerPage = 3

// Page is one page of a paginated sequence. It is a pure value:
// building a Page has no side effects and does not mutate the items.
type Page[T any] struct {
	// Number is the requested page number, 1-based.
	Number int

	// Pages is the total number of pages, ceil(len(items)/ItemsPerPage).
	Pages int

	items []T
}

// New builds the page with the given number over items. Page numbers
// below 1 are normalized to 1. Requesting a page past the end is not
// an error; such a page simply has no items.
func New[T any](items []T, number int) Page[T] {
	if number < 1 {
		number = 1
	}

	return Page[T]{
		Number: number,
		Pages:  (len(items) + ItemsPerPage - 1) / ItemsPerPage,
		items:  items,
	}
}

// FromRequest builds the page from the request's "page" query
// parameter, defaulting to 1 when absent or non-numeric.
func FromRequest[T any](items []T, r *http.Request) Page[T] {
	number, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		number = 1
	}
	return New(items, number)
}

// Items returns the slice of items belonging to this page. Pages past
// the end yield an empty slice.
func (p Page[T]) Items() []T {
	start := (p.Number - 1) * ItemsPerPage
	if start >= len(p.items) {
		return []T{}
	}

	end := start + ItemsPerPage
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// NextNumber returns the number of the page after this one, and false
// when this is the last page.
func (p Page[T]) NextNumber() (int, bool) {
	if p.Number >= p.Pages {
		return 0, false
	}
	return p.Number + 1, true
}

// NextURL returns base with the next page's "page" query parameter
// appended, and false when there is no next page.
func (p Page[T]) NextURL(base string) (string, bool) {
	next, ok := p.NextNumber()
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s?page=%d", base, next), true
}
