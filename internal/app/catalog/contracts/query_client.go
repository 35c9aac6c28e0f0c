package contracts

import (
	"context"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
)

// QueryClient is the browsing session's view of the Query Boundary.
// A call whose ctx is cancelled must return an error wrapping context.Canceled.
type QueryClient interface {
	ListProducts(ctx context.Context, params domain.Params) (*domain.ResultPage, error)
}

// CatalogClient is the full remote surface of the catalog service.
type CatalogClient interface {
	QueryClient

	// GetProduct returns the product with slug and its similar products
	GetProduct(ctx context.Context, slug string) (*domain.ProductDetails, error)

	// ListCategories returns per-category product counts
	ListCategories(ctx context.Context) ([]domain.CategorySummary, error)
}

// Navigator replaces the browsing location's query string without navigating.
type Navigator interface {
	Replace(params domain.Params)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(params domain.Params)

// Replace calls f(params).
func (f NavigatorFunc) Replace(params domain.Params) {
	f(params)
}
