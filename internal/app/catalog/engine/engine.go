// Package engine turns a catalog and a FilterState into a filtered, ordered
// product set and its facet metadata. Everything here is pure: no I/O, no
// errors, and the input catalog is never modified.
package engine

import (
	"sort"
	"strings"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
)

// Engine evaluates filter states against a catalog.
type Engine struct {
	weights Weights
}

// New creates an engine scoring with w.
func New(w Weights) *Engine {
	return &Engine{weights: w}
}

// NewDefault creates an engine with DefaultWeights.
func NewDefault() *Engine {
	return New(DefaultWeights())
}

// Weights returns the weights the engine scores with.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Query returns the full filtered and sorted set for state, before pagination.
// Page and PageSize of state are ignored.
func (e *Engine) Query(catalog []domain.Product, state domain.FilterState) []domain.Product {
	tokens := Tokenize(state.Search)

	result := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		if state.Category != "" && p.Category != state.Category {
			continue
		}
		if state.PriceMin != nil && p.Price < *state.PriceMin {
			continue
		}
		if state.PriceMax != nil && p.Price > *state.PriceMax {
			continue
		}
		if state.InStockOnly && !p.InStock {
			continue
		}
		if !MatchesAll(p, tokens) {
			continue
		}
		result = append(result, p)
	}

	e.sortProducts(result, state.Sort, tokens)
	return result
}

// Run evaluates state and returns the requested page with metadata of the full filtered set.
func (e *Engine) Run(catalog []domain.Product, state domain.FilterState) domain.ResultPage {
	filtered := e.Query(catalog, state)
	return domain.ResultPage{
		Products: Paginate(filtered, state.Page, state.PageSize),
		Meta:     Meta(filtered, state.Page, state.PageSize),
	}
}

// Score is the relevance score of p for the given search tokens.
func (e *Engine) Score(p domain.Product, tokens []string) int {
	if len(tokens) == 0 {
		if p.Highlight {
			return e.weights.Highlight
		}
		return 0
	}

	name := strings.ToLower(p.Name)
	description := strings.ToLower(p.Description)

	score := 0
	for _, token := range tokens {
		switch {
		case strings.Contains(name, token):
			score += e.weights.Name
		case strings.Contains(description, token):
			score += e.weights.Description
		case tagsContain(p.Tags, token):
			score += e.weights.Tag
		}
	}
	return score
}

// Tokenize lower-cases search and splits it on whitespace.
func Tokenize(search string) []string {
	return strings.Fields(strings.ToLower(search))
}

// Matches reports whether token occurs in the name, the description or any tag of p.
func Matches(p domain.Product, token string) bool {
	return strings.Contains(strings.ToLower(p.Name), token) ||
		strings.Contains(strings.ToLower(p.Description), token) ||
		tagsContain(p.Tags, token)
}

// MatchesAll reports whether every token matches p. No tokens match everything.
func MatchesAll(p domain.Product, tokens []string) bool {
	for _, token := range tokens {
		if !Matches(p, token) {
			return false
		}
	}
	return true
}

func tagsContain(tags []string, token string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), token) {
			return true
		}
	}
	return false
}

// sortProducts orders products in place. Every ordering is stable so ties keep catalog order.
func (e *Engine) sortProducts(products []domain.Product, mode domain.SortMode, tokens []string) {
	switch mode {
	case domain.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case domain.SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case domain.SortNewest:
		sortByKeyDesc(products, NewestKey)
	default:
		sortByKeyDesc(products, func(p domain.Product) int64 {
			return int64(e.Score(p, tokens))
		})
	}
}

// sortByKeyDesc computes key once per product and stable-sorts by it, highest first.
func sortByKeyDesc(products []domain.Product, key func(domain.Product) int64) {
	keyed := make([]keyedProduct, len(products))
	for i, p := range products {
		keyed[i] = keyedProduct{product: p, key: key(p)}
	}
	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].key > keyed[j].key
	})
	for i := range keyed {
		products[i] = keyed[i].product
	}
}

type keyedProduct struct {
	product domain.Product
	key     int64
}
