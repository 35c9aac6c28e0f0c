package services

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/spanner"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/engine"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-catalog/internal/config"
	"github.com/light-bringer/storefront-catalog/internal/transport/grpc/catalog"
	httptransport "github.com/light-bringer/storefront-catalog/internal/transport/http"
)

// CatalogBackend is a catalog store that also answers single-product lookups.
type CatalogBackend interface {
	contracts.CatalogStore
	contracts.ProductLookup
}

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	RedisClient   *redis.Client

	Store  CatalogBackend
	Engine *engine.Engine

	ListProducts   *list_products.Query
	GetProduct     *get_product.Query
	ListCategories *list_categories.Query

	CatalogHandler *catalog.Handler
	HTTPHandler    *httptransport.CatalogHandler
	RateLimiter    *rate.Limiter
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg config.Config) (*ServiceOptions, error) {
	s := &ServiceOptions{}

	// 1. Catalog store
	store, err := s.openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// 2. Optional Redis snapshot cache
	if cfg.RedisAddr != "" {
		s.RedisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       0,
		})
		if err := s.RedisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis unavailable at %s, serving uncached: %v", cfg.RedisAddr, err)
		}
		store = repo.NewCachedCatalog(store, s.RedisClient, cfg.CacheTTL)
	}
	s.Store = store

	// 3. Query engine
	if err := cfg.Weights.Validate(); err != nil {
		s.Close()
		return nil, fmt.Errorf("invalid relevance weights: %w", err)
	}
	s.Engine = engine.New(cfg.Weights)

	// 4. Queries (read operations)
	s.ListProducts = list_products.NewQuery(store, s.Engine, list_products.WithDefaultPageSize(cfg.DefaultPageSize))
	s.GetProduct = get_product.NewQuery(store)
	s.ListCategories = list_categories.NewQuery(store)

	// 5. Transport handlers
	s.CatalogHandler = catalog.NewHandler(s.ListProducts, s.GetProduct, s.ListCategories)
	s.HTTPHandler = httptransport.NewCatalogHandler(s.ListProducts, s.GetProduct, s.ListCategories)
	if cfg.RateLimited() {
		s.RateLimiter = httptransport.NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	return s, nil
}

func (s *ServiceOptions) openStore(ctx context.Context, cfg config.Config) (CatalogBackend, error) {
	switch cfg.CatalogSource {
	case config.SourceSpanner:
		client, err := spanner.NewClient(ctx, cfg.SpannerDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		s.SpannerClient = client
		return repo.NewSpannerCatalog(client), nil

	case config.SourceSeed, "":
		seed, err := repo.LoadSeedCatalog()
		if err != nil {
			return nil, fmt.Errorf("failed to load seed catalog: %w", err)
		}
		return seed, nil

	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
	if s.RedisClient != nil {
		if err := s.RedisClient.Close(); err != nil {
			log.Printf("Redis close error: %v", err)
		}
	}
}
