package contracts

import (
	"context"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
)

// CatalogStore is the read-only source of products and the category taxonomy.
// Implementations return products in catalog order; that order is the relevance tie-break.
type CatalogStore interface {
	// AllProducts returns every product of the catalog
	AllProducts(ctx context.Context) ([]domain.Product, error)

	// CategoryDefinitions returns the category taxonomy, including non-listing categories
	CategoryDefinitions(ctx context.Context) ([]domain.CategoryDefinition, error)
}

// ProductLookup finds single products and their neighbours without a full catalog scan.
type ProductLookup interface {
	// ProductBySlug returns domain.ErrProductNotFound for an unknown slug
	ProductBySlug(ctx context.Context, slug string) (domain.Product, error)

	// ProductsInCategory returns up to limit products of category in catalog order, skipping excludeSlug
	ProductsInCategory(ctx context.Context, category domain.Category, excludeSlug string, limit int) ([]domain.Product, error)
}
