package pagination_test

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmekki/casting-api/internal/pagination"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total     int
		wantPages int
	}{
		{total: 0, wantPages: 0},
		{total: 1, wantPages: 1},
		{total: 3, wantPages: 1},
		{total: 4, wantPages: 2},
		{total: 6, wantPages: 2},
		{total: 7, wantPages: 3},
		{total: 10, wantPages: 4},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d items", tt.total), func(t *testing.T) {
			page := pagination.New(makeItems(tt.total), 1)
			assert.Equal(t, tt.wantPages, page.Pages)
		})
	}
}

func TestPagesConcatenateToOriginal(t *testing.T) {
	for _, total := range []int{0, 1, 2, 3, 4, 7, 9, 10} {
		items := makeItems(total)
		first := pagination.New(items, 1)

		var gathered []int
		for number := 1; number <= first.Pages; number++ {
			page := pagination.New(items, number)
			assert.LessOrEqual(t, len(page.Items()), pagination.ItemsPerPage)
			gathered = append(gathered, page.Items()...)
		}

		assert.Equal(t, items, append([]int{}, gathered...),
			"concatenated pages must reproduce the original sequence for %d items", total)
	}
}

func TestOutOfRangePageIsEmpty(t *testing.T) {
	page := pagination.New(makeItems(7), 99)

	assert.Empty(t, page.Items())
	assert.Equal(t, 99, page.Number)
	assert.Equal(t, 3, page.Pages)

	_, ok := page.NextNumber()
	assert.False(t, ok)
}

func TestPageNumberNormalization(t *testing.T) {
	page := pagination.New(makeItems(7), 0)
	assert.Equal(t, 1, page.Number)

	page = pagination.New(makeItems(7), -5)
	assert.Equal(t, 1, page.Number)
}

func TestNextNavigation(t *testing.T) {
	items := makeItems(7)

	first := pagination.New(items, 1)
	next, ok := first.NextNumber()
	require.True(t, ok)
	assert.Equal(t, 2, next)

	url, ok := first.NextURL("http://example.com/actors")
	require.True(t, ok)
	assert.Equal(t, "http://example.com/actors?page=2", url)

	last := pagination.New(items, 3)
	_, ok = last.NextNumber()
	assert.False(t, ok)
	_, ok = last.NextURL("http://example.com/actors")
	assert.False(t, ok)
}

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantNumber int
	}{
		{name: "Explicit Page", target: "/actors?page=2", wantNumber: 2},
		{name: "Missing Page", target: "/actors", wantNumber: 1},
		{name: "Non Numeric Page", target: "/actors?page=abc", wantNumber: 1},
		{name: "Negative Page", target: "/actors?page=-3", wantNumber: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			page := pagination.FromRequest(makeItems(7), r)
			assert.Equal(t, tt.wantNumber, page.Number)
		})
	}
}
