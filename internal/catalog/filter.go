package catalog

import (
	"sort"
	"strings"

	"morefix/internal/domain"
)

// Sort keys for the visible product list.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortNewest    = "newest" // default
)

// Query selects and orders the visible subset of a catalog.
type Query struct {
	Text     string // case-insensitive substring on title or description
	Category string // exact match; domain.CategoryAll matches everything
	Sort     string // one of the Sort* keys; anything else falls back to newest
}

// Apply filters and sorts products. Pure: the input slice is never
// mutated, ties keep the input order, and the same query always yields
// the same result.
func Apply(products []domain.Product, q Query) []domain.Product {
	needle := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matchText(p, needle) {
			continue
		}
		if !matchCategory(p, q.Category) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, comparator(out, q.Sort))
	return out
}

func matchText(p domain.Product, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

func matchCategory(p domain.Product, cat string) bool {
	if cat == "" || cat == domain.CategoryAll {
		return true
	}
	return p.Category == cat
}

func comparator(ps []domain.Product, key string) func(i, j int) bool {
	switch key {
	case SortPriceAsc:
		return func(i, j int) bool { return ps[i].Price < ps[j].Price }
	case SortPriceDesc:
		return func(i, j int) bool { return ps[i].Price > ps[j].Price }
	case SortRating:
		// missing rating counts as 0
		return func(i, j int) bool { return ps[i].Rating > ps[j].Rating }
	default: // SortNewest
		// created_at is stored in a lexicographically sortable format
		return func(i, j int) bool { return ps[i].CreatedAt > ps[j].CreatedAt }
	}
}
