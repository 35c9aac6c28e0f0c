package engine

import (
	"math"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
)

// Paginate returns the 1-indexed page of products. Pages past the end are empty, never nil.
func Paginate(products []domain.Product, page, pageSize int) []domain.Product {
	if pageSize < 1 {
		return []domain.Product{}
	}
	start := (page - 1) * pageSize
	if start < 0 {
		start = 0
	}
	if start >= len(products) {
		return []domain.Product{}
	}
	end := start + pageSize
	if end > len(products) || end < start {
		end = len(products)
	}

	out := make([]domain.Product, end-start)
	copy(out, products[start:end])
	return out
}

// Meta describes the filtered set for the given page. PriceRange is 0/0 for an empty set.
func Meta(filtered []domain.Product, page, pageSize int) domain.FiltersMeta {
	meta := domain.FiltersMeta{
		Total:    len(filtered),
		Page:     page,
		PageSize: pageSize,
		HasMore:  page*pageSize < len(filtered),
	}
	if len(filtered) == 0 {
		return meta
	}

	minPrice, maxPrice := math.Inf(1), math.Inf(-1)
	for _, p := range filtered {
		minPrice = math.Min(minPrice, p.Price)
		maxPrice = math.Max(maxPrice, p.Price)
		if p.InStock {
			meta.InStock++
		}
	}
	meta.PriceRange = domain.PriceRange{Min: minPrice, Max: maxPrice}
	return meta
}
