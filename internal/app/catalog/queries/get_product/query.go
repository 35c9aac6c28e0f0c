package get_product

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/engine"
)

// Request contains the slug of the product to retrieve.
type Request struct {
	Slug string
}

// Query handles the get product query use case.
type Query struct {
	lookup       contracts.ProductLookup
	similarLimit int
}

// NewQuery creates a new get product query.
func NewQuery(lookup contracts.ProductLookup) *Query {
	return &Query{
		lookup:       lookup,
		similarLimit: engine.DefaultSimilarLimit,
	}
}

// Execute retrieves a product by slug together with up to four products of its category.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.ProductDetails, error) {
	product, err := q.lookup.ProductBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	similar, err := q.lookup.ProductsInCategory(ctx, product.Category, product.Slug, q.similarLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	return &domain.ProductDetails{
		Product: product,
		Similar: similar,
	}, nil
}
