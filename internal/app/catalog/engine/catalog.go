package engine

import (
	"strconv"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
)

// DefaultSimilarLimit is how many related products a product page shows.
const DefaultSimilarLimit = 4

// NewestKey orders products for the newest sort. A release date wins; otherwise the
// trailing digits of the ID are used so undated products still order deterministically.
func NewestKey(p domain.Product) int64 {
	if p.ReleaseDate != nil {
		return p.ReleaseDate.UnixMilli()
	}
	end := len(p.ID)
	start := end
	for start > 0 && p.ID[start-1] >= '0' && p.ID[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0
	}
	n, err := strconv.ParseInt(p.ID[start:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// FindBySlug returns the product with the given slug.
func FindBySlug(catalog []domain.Product, slug string) (domain.Product, bool) {
	for _, p := range catalog {
		if p.Slug == slug {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Similar returns up to limit products of the same category as p, in catalog order, excluding p.
func Similar(catalog []domain.Product, p domain.Product, limit int) []domain.Product {
	out := []domain.Product{}
	for _, item := range catalog {
		if len(out) >= limit {
			break
		}
		if item.Category == p.Category && item.Slug != p.Slug {
			out = append(out, item)
		}
	}
	return out
}

// CategorySummaries counts catalog products per listing category. Listing categories
// without products are reported with a zero count. Labels come from defs, falling back to the slug.
func CategorySummaries(catalog []domain.Product, defs []domain.CategoryDefinition) []domain.CategorySummary {
	labels := make(map[domain.Category]string, len(defs))
	for _, def := range defs {
		labels[def.Slug] = def.Name
	}

	counts := make(map[domain.Category]int)
	for _, p := range catalog {
		counts[p.Category]++
	}

	listing := domain.ListingCategories()
	out := make([]domain.CategorySummary, 0, len(listing))
	for _, c := range listing {
		label, ok := labels[c]
		if !ok {
			label = c.String()
		}
		out = append(out, domain.CategorySummary{ID: c, Label: label, Count: counts[c]})
	}
	return out
}
