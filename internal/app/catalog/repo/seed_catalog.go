package repo

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/engine"
)

//go:embed seed/products.json seed/categories.json
var seedFS embed.FS

// SeedCatalog is an in-memory catalog store. The storefront dataset is embedded in the binary.
type SeedCatalog struct {
	products   []domain.Product
	categories []domain.CategoryDefinition
}

// NewSeedCatalog creates a catalog store over the given products and categories.
func NewSeedCatalog(products []domain.Product, categories []domain.CategoryDefinition) *SeedCatalog {
	return &SeedCatalog{
		products:   products,
		categories: categories,
	}
}

// LoadSeedCatalog decodes the embedded storefront dataset.
func LoadSeedCatalog() (*SeedCatalog, error) {
	var products []domain.Product
	if err := decodeSeed("seed/products.json", &products); err != nil {
		return nil, err
	}

	var categories []domain.CategoryDefinition
	if err := decodeSeed("seed/categories.json", &categories); err != nil {
		return nil, err
	}

	return NewSeedCatalog(products, categories), nil
}

func decodeSeed(name string, v interface{}) error {
	raw, err := seedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// AllProducts returns a copy of the products in catalog order.
func (c *SeedCatalog) AllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

// CategoryDefinitions returns a copy of the taxonomy.
func (c *SeedCatalog) CategoryDefinitions(ctx context.Context) ([]domain.CategoryDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.CategoryDefinition, len(c.categories))
	copy(out, c.categories)
	return out, nil
}

// ProductBySlug scans the catalog for slug.
func (c *SeedCatalog) ProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}
	p, ok := engine.FindBySlug(c.products, slug)
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

// ProductsInCategory returns the first limit products of category other than excludeSlug.
func (c *SeedCatalog) ProductsInCategory(ctx context.Context, category domain.Category, excludeSlug string, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return engine.Similar(c.products, domain.Product{Category: category, Slug: excludeSlug}, limit), nil
}

var (
	_ contracts.CatalogStore  = (*SeedCatalog)(nil)
	_ contracts.ProductLookup = (*SeedCatalog)(nil)
)
