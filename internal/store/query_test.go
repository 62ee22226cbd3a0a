package store

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestPaginate(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i + 1
	}

	first := Paginate(items, mustURL(t, "/api/drivers/?page_size=20"), DefaultPageSize)
	assert.Equal(t, 45, first.Count)
	assert.Len(t, first.Results, 20)
	assert.Equal(t, 1, first.Results[0])
	assert.Nil(t, first.Previous)
	require.NotNil(t, first.Next)
	assert.Contains(t, *first.Next, "page=2")
	assert.Contains(t, *first.Next, "page_size=20")

	second := Paginate(items, mustURL(t, "/api/drivers/?page=2&page_size=20"), DefaultPageSize)
	assert.Len(t, second.Results, 20)
	assert.Equal(t, 21, second.Results[0])
	require.NotNil(t, second.Previous)
	assert.Contains(t, *second.Previous, "page=1")
	require.NotNil(t, second.Next)

	last := Paginate(items, mustURL(t, "/api/drivers/?page=3&page_size=20"), DefaultPageSize)
	assert.Len(t, last.Results, 5)
	assert.Nil(t, last.Next)
	assert.NotNil(t, last.Previous)

	// Concatenating all pages reproduces the original order exactly once.
	var all []int
	for page := 1; page <= 3; page++ {
		p := Paginate(items, mustURL(t, fmt.Sprintf("/api/drivers/?page=%d&page_size=20", page)), DefaultPageSize)
		all = append(all, p.Results...)
	}
	assert.Equal(t, items, all)
}

func TestPaginatePastTheEnd(t *testing.T) {
	items := []string{"a", "b", "c"}
	p := Paginate(items, mustURL(t, "/api/vehicles/?page=9&page_size=2"), DefaultPageSize)
	assert.Equal(t, 3, p.Count)
	assert.Empty(t, p.Results)
	assert.NotNil(t, p.Results, "results must encode as [] not null")
	assert.Nil(t, p.Next)
}

func TestPaginateDefaults(t *testing.T) {
	items := make([]int, 30)
	p := Paginate(items, mustURL(t, "/api/shipments/"), DefaultPageSize)
	assert.Len(t, p.Results, 20)
	require.NotNil(t, p.Next)
	assert.Contains(t, *p.Next, "page=2")

	// Garbage paging parameters fall back to defaults instead of erroring.
	p = Paginate(items, mustURL(t, "/api/shipments/?page=zero&page_size=-4"), DefaultPageSize)
	assert.Len(t, p.Results, 20)
}

func TestFilterBySearch(t *testing.T) {
	type rec struct{ name, city string }
	items := []rec{
		{"Mercedes Actros", "İstanbul"},
		{"Volvo FH16", "Ankara"},
		{"Ford Transit", "İzmir"},
	}
	fields := func(r rec) []string { return []string{r.name, r.city} }

	tests := []struct {
		name string
		term string
		want int
	}{
		{"case insensitive brand", "volvo", 1},
		{"substring across items", "an", 3}, // İstanbul, Ankara, Transit
		{"no match", "scania", 0},
		{"matches second field", "izmir", 0}, // dotless ı is a different rune
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, FilterBySearch(items, tt.term, fields), tt.want)
		})
	}
}

func TestFilterBySearchEmptyTermIsNoOp(t *testing.T) {
	items := []string{"a", "b"}
	out := FilterBySearch(items, "", func(s string) []string { return []string{s} })
	assert.Equal(t, items, out)
}

func TestFilterByField(t *testing.T) {
	items := []string{"IDLE", "TRANSIT", "TRANSIT", "MAINTENANCE"}
	key := func(s string) string { return s }

	assert.Len(t, FilterByField(items, "TRANSIT", key), 2)
	assert.Len(t, FilterByField(items, "transit", key), 0, "exact match only")
	assert.Equal(t, items, FilterByField(items, "", key), "empty value is a no-op")
}
