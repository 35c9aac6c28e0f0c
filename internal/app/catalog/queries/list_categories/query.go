package list_categories

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/engine"
)

// Query handles the list categories query use case.
type Query struct {
	store contracts.CatalogStore
}

// NewQuery creates a new list categories query.
func NewQuery(store contracts.CatalogStore) *Query {
	return &Query{
		store: store,
	}
}

// Execute counts the catalog per listing category.
func (q *Query) Execute(ctx context.Context) ([]domain.CategorySummary, error) {
	products, err := q.store.AllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	defs, err := q.store.CategoryDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	return engine.CategorySummaries(products, defs), nil
}
