package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/engine"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-catalog/internal/config"
	"github.com/light-bringer/storefront-catalog/internal/transport/grpc/catalog"
	httptransport "github.com/light-bringer/storefront-catalog/internal/transport/http"
)

// Transports catalogctl can talk over.
const (
	transportHTTP  = "http"
	transportGRPC  = "grpc"
	transportLocal = "local"
)

var (
	transport  string
	serverURL  string
	grpcAddr   string
	reqTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:          "catalogctl",
	Short:        "Query and browse the storefront catalog",
	SilenceUsage: true,
}

func init() {
	config.LoadEnv()
	rootCmd.PersistentFlags().StringVarP(&transport, "transport", "t", envOr("CATALOG_TRANSPORT", transportHTTP), "Transport: http, grpc or local (embedded seed catalog)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", envOr("CATALOG_URL", "http://localhost:8080"), "HTTP base URL of the catalog server")
	rootCmd.PersistentFlags().StringVar(&grpcAddr, "grpc-addr", envOr("CATALOG_GRPC_ADDR", "localhost:9090"), "gRPC address of the catalog server")
	rootCmd.PersistentFlags().DurationVar(&reqTimeout, "timeout", 10*time.Second, "Timeout of a single request")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// newClient opens the selected transport. The returned close func is never nil.
func newClient() (contracts.CatalogClient, func(), error) {
	switch transport {
	case transportHTTP:
		return httptransport.NewClient(serverURL), func() {}, nil

	case transportGRPC:
		client, conn, err := catalog.Dial(grpcAddr)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { conn.Close() }, nil

	case transportLocal:
		client, err := newLocalClient()
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown transport %q (want http, grpc or local)", transport)
	}
}

// localClient answers from the embedded seed catalog without a server.
type localClient struct {
	*list_products.Query
	getProduct     *get_product.Query
	listCategories *list_categories.Query
}

func newLocalClient() (*localClient, error) {
	store, err := repo.LoadSeedCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed catalog: %w", err)
	}
	return &localClient{
		Query:          list_products.NewQuery(store, engine.NewDefault()),
		getProduct:     get_product.NewQuery(store),
		listCategories: list_categories.NewQuery(store),
	}, nil
}

func (c *localClient) GetProduct(ctx context.Context, slug string) (*domain.ProductDetails, error) {
	return c.getProduct.Execute(ctx, &get_product.Request{Slug: slug})
}

func (c *localClient) ListCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	return c.listCategories.Execute(ctx)
}

var _ contracts.CatalogClient = (*localClient)(nil)
