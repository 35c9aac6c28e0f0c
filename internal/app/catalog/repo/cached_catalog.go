package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/engine"
)

// Redis keys of the catalog snapshot.
const (
	ProductsCacheKey   = "catalog:products"
	CategoriesCacheKey = "catalog:categories"
)

// CachedCatalog keeps a JSON snapshot of another catalog store in Redis.
// Redis failures are logged and fall back to the underlying store.
type CachedCatalog struct {
	next   contracts.CatalogStore
	client *redis.Client
	ttl    time.Duration
}

// NewCachedCatalog wraps next with a Redis snapshot that expires after ttl.
func NewCachedCatalog(next contracts.CatalogStore, client *redis.Client, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

// AllProducts returns the cached product snapshot, loading it from the underlying store on a miss.
func (c *CachedCatalog) AllProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if c.load(ctx, ProductsCacheKey, &products) {
		return products, nil
	}

	products, err := c.next.AllProducts(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, ProductsCacheKey, products)
	return products, nil
}

// CategoryDefinitions returns the cached taxonomy, loading it from the underlying store on a miss.
func (c *CachedCatalog) CategoryDefinitions(ctx context.Context) ([]domain.CategoryDefinition, error) {
	var defs []domain.CategoryDefinition
	if c.load(ctx, CategoriesCacheKey, &defs) {
		return defs, nil
	}

	defs, err := c.next.CategoryDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, CategoriesCacheKey, defs)
	return defs, nil
}

// Invalidate drops the snapshot so the next read goes to the underlying store.
func (c *CachedCatalog) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, ProductsCacheKey, CategoriesCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}
	return nil
}

func (c *CachedCatalog) load(ctx context.Context, key string, v interface{}) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("catalog cache: get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Printf("catalog cache: decode %s: %v", key, err)
		return false
	}
	return true
}

func (c *CachedCatalog) store(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("catalog cache: encode %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("catalog cache: set %s: %v", key, err)
	}
}

// ProductBySlug looks slug up in the cached snapshot.
func (c *CachedCatalog) ProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	products, err := c.AllProducts(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	p, ok := engine.FindBySlug(products, slug)
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

// ProductsInCategory selects from the cached snapshot.
func (c *CachedCatalog) ProductsInCategory(ctx context.Context, category domain.Category, excludeSlug string, limit int) ([]domain.Product, error) {
	products, err := c.AllProducts(ctx)
	if err != nil {
		return nil, err
	}
	return engine.Similar(products, domain.Product{Category: category, Slug: excludeSlug}, limit), nil
}

var (
	_ contracts.CatalogStore  = (*CachedCatalog)(nil)
	_ contracts.ProductLookup = (*CachedCatalog)(nil)
)
