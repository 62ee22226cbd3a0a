package store

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize is the page size used when the request does not carry a
// page_size parameter. Individual resources may override it.
const DefaultPageSize = 20

// Page is the pagination envelope every list endpoint returns. Next and
// Previous are relative URLs with the page parameters rewritten, or null
// at the respective boundary.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// FilterBySearch keeps the items where the term appears, case-insensitively,
// as a substring of at least one of the item's searchable field values. An
// empty term is a no-op and returns the input unchanged.
func FilterBySearch[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	var out []T
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// FilterByField keeps the items whose key equals the value exactly, after
// string conversion. An empty value is a no-op and returns the input
// unchanged.
func FilterByField[T any](items []T, value string, key func(T) string) []T {
	if value == "" {
		return items
	}
	var out []T
	for _, item := range items {
		if key(item) == value {
			out = append(out, item)
		}
	}
	return out
}

// Paginate slices items according to the page/page_size parameters of the
// request URL. Pages are 1-indexed; a page past the end yields an empty
// results array with a null next link rather than an error.
func Paginate[T any](items []T, u *url.URL, defaultSize int) Page[T] {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	q := u.Query()
	page := positiveInt(q.Get("page"), 1)
	size := positiveInt(q.Get("page_size"), defaultSize)

	total := len(items)
	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := Page[T]{
		Count:   total,
		Results: make([]T, 0, end-start),
	}
	out.Results = append(out.Results, items[start:end]...)

	if end < total {
		out.Next = pageURL(u, page+1, size)
	}
	if page > 1 {
		out.Previous = pageURL(u, page-1, size)
	}
	return out
}

func pageURL(u *url.URL, page, size int) *string {
	rewritten := *u
	q := rewritten.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(size))
	rewritten.RawQuery = q.Encode()
	s := rewritten.RequestURI()
	return &s
}

func positiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
