package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/engine"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string {
		return m[key]
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "9090", cfg.GRPCPort)
	assert.Equal(t, SourceSeed, cfg.CatalogSource)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 50.0, cfg.RateLimitRPS)
	assert.Equal(t, 100, cfg.RateLimitBurst)
	assert.True(t, cfg.RateLimited())
	assert.Empty(t, cfg.OTLPEndpoint)
	assert.Equal(t, 12, cfg.DefaultPageSize)
	assert.Equal(t, engine.DefaultWeights(), cfg.Weights)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"HTTP_PORT":                    "8181",
		"CATALOG_SOURCE":               "Spanner",
		"SPANNER_DATABASE":             "projects/p/instances/i/databases/d",
		"REDIS_ADDR":                   "localhost:6379",
		"CATALOG_CACHE_TTL":            "30s",
		"RATE_LIMIT_RPS":               "0",
		"DEFAULT_PAGE_SIZE":            "24",
		"RELEVANCE_NAME_WEIGHT":        "10",
		"RELEVANCE_DESCRIPTION_WEIGHT": "5",
		"RELEVANCE_TAG_WEIGHT":         "2",
		"RELEVANCE_HIGHLIGHT_WEIGHT":   "0",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8181", cfg.HTTPPort)
	assert.Equal(t, SourceSpanner, cfg.CatalogSource)
	assert.Equal(t, "projects/p/instances/i/databases/d", cfg.SpannerDB)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.False(t, cfg.RateLimited())
	assert.Equal(t, 24, cfg.DefaultPageSize)
	assert.Equal(t, engine.Weights{Name: 10, Description: 5, Tag: 2, Highlight: 0}, cfg.Weights)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"malformed int", map[string]string{"DEFAULT_PAGE_SIZE": "doze"}, "DEFAULT_PAGE_SIZE"},
		{"malformed duration", map[string]string{"CATALOG_CACHE_TTL": "5 minutes"}, "CATALOG_CACHE_TTL"},
		{"malformed float", map[string]string{"RATE_LIMIT_RPS": "fast"}, "RATE_LIMIT_RPS"},
		{"unknown source", map[string]string{"CATALOG_SOURCE": "mysql"}, "CATALOG_SOURCE"},
		{"zero page size", map[string]string{"DEFAULT_PAGE_SIZE": "0"}, "DEFAULT_PAGE_SIZE"},
		{"negative burst", map[string]string{"RATE_LIMIT_BURST": "-1"}, "rate limit"},
		{"description outweighs name", map[string]string{"RELEVANCE_DESCRIPTION_WEIGHT": "4"}, "relevance weights"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envMap(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	if _, ok := os.LookupEnv("GRPC_PORT"); ok {
		t.Skip("GRPC_PORT is set in the environment; .env does not override it")
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GRPC_PORT=9191\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		_ = os.Unsetenv("GRPC_PORT")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9191", cfg.GRPCPort)
}
