package repo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
)

type countingStore struct {
	*SeedCatalog
	productCalls int
}

func (s *countingStore) AllProducts(ctx context.Context) ([]domain.Product, error) {
	s.productCalls++
	return s.SeedCatalog.AllProducts(ctx)
}

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
	})
	require.NoError(t, client.Ping(context.Background()).Err())
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCachedCatalog_ServesSnapshot(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	seed, err := LoadSeedCatalog()
	require.NoError(t, err)
	inner := &countingStore{SeedCatalog: seed}

	cached := NewCachedCatalog(inner, client, time.Minute)
	require.NoError(t, cached.Invalidate(ctx))

	first, err := cached.AllProducts(ctx)
	require.NoError(t, err)
	second, err := cached.AllProducts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.productCalls)
	assert.Equal(t, first, second)

	p, err := cached.ProductBySlug(ctx, "coleira-smart-gps-pet")
	require.NoError(t, err)
	assert.Equal(t, "prd-pet-005", p.ID)
	assert.Equal(t, 1, inner.productCalls)

	require.NoError(t, cached.Invalidate(ctx))
	_, err = cached.AllProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.productCalls)
}

func TestCachedCatalog_FallsBackWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	seed := NewSeedCatalog([]domain.Product{{ID: "a", Slug: "a"}}, []domain.CategoryDefinition{{Slug: domain.CategoryPet}})
	cached := NewCachedCatalog(seed, client, time.Minute)

	products, err := cached.AllProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 1)

	defs, err := cached.CategoryDefinitions(context.Background())
	require.NoError(t, err)
	assert.Len(t, defs, 1)
}
