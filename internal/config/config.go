// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/engine"
)

// Catalog sources.
const (
	SourceSeed    = "seed"
	SourceSpanner = "spanner"
)

// Config holds application configuration.
type Config struct {
	HTTPPort string
	GRPCPort string

	CatalogSource string
	SpannerDB     string

	RedisAddr string
	RedisPass string
	CacheTTL  time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	OTLPEndpoint string

	DefaultPageSize int
	Weights         engine.Weights
}

// LoadEnv loads a .env file into the process environment if one is present.
func LoadEnv() {
	// If .env is missing, ignore error (env vars can be set by other means)
	_ = godotenv.Load()
}

// Load reads .env (if present) and the environment, applying defaults.
func Load() (Config, error) {
	LoadEnv()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv. Unset variables take their defaults;
// set but malformed ones are errors.
func FromEnv(getenv func(string) string) (Config, error) {
	p := parser{getenv: getenv}

	cfg := Config{
		HTTPPort:      p.str("HTTP_PORT", "8080"),
		GRPCPort:      p.str("GRPC_PORT", "9090"),
		CatalogSource: strings.ToLower(p.str("CATALOG_SOURCE", SourceSeed)),
		// Default for local development with emulator
		SpannerDB:       p.str("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/storefront"),
		RedisAddr:       p.str("REDIS_ADDR", ""),
		RedisPass:       p.str("REDIS_PASS", ""),
		CacheTTL:        p.duration("CATALOG_CACHE_TTL", 5*time.Minute),
		RateLimitRPS:    p.float("RATE_LIMIT_RPS", 50),
		RateLimitBurst:  p.int("RATE_LIMIT_BURST", 100),
		OTLPEndpoint:    p.str("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		DefaultPageSize: p.int("DEFAULT_PAGE_SIZE", 12),
		Weights: engine.Weights{
			Name:        p.int("RELEVANCE_NAME_WEIGHT", engine.DefaultWeights().Name),
			Description: p.int("RELEVANCE_DESCRIPTION_WEIGHT", engine.DefaultWeights().Description),
			Tag:         p.int("RELEVANCE_TAG_WEIGHT", engine.DefaultWeights().Tag),
			Highlight:   p.int("RELEVANCE_HIGHLIGHT_WEIGHT", engine.DefaultWeights().Highlight),
		},
	}
	if p.err != nil {
		return Config{}, p.err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that parse but make no sense.
func (c Config) Validate() error {
	if c.CatalogSource != SourceSeed && c.CatalogSource != SourceSpanner {
		return fmt.Errorf("CATALOG_SOURCE must be %q or %q, got %q", SourceSeed, SourceSpanner, c.CatalogSource)
	}
	if c.CatalogSource == SourceSpanner && c.SpannerDB == "" {
		return fmt.Errorf("SPANNER_DATABASE is required when CATALOG_SOURCE=%s", SourceSpanner)
	}
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be positive, got %d", c.DefaultPageSize)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit must not be negative")
	}
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("invalid relevance weights: %w", err)
	}
	return nil
}

// RateLimited reports whether the HTTP API should be rate limited.
func (c Config) RateLimited() bool {
	return c.RateLimitRPS > 0
}

// LogSummary prints the effective configuration, without secrets.
func (c Config) LogSummary() {
	log.Printf("Catalog source: %s", c.CatalogSource)
	if c.CatalogSource == SourceSpanner {
		log.Printf("Spanner Database: %s", c.SpannerDB)
	}
	if c.RedisAddr != "" {
		log.Printf("Redis cache: %s (ttl %s)", c.RedisAddr, c.CacheTTL)
	}
	log.Printf("gRPC Port: %s", c.GRPCPort)
	log.Printf("HTTP Port: %s", c.HTTPPort)
}

type parser struct {
	getenv func(string) string
	err    error
}

func (p *parser) str(key, def string) string {
	if v := strings.TrimSpace(p.getenv(key)); v != "" {
		return v
	}
	return def
}

func (p *parser) int(key string, def int) int {
	raw := strings.TrimSpace(p.getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return v
}

func (p *parser) float(key string, def float64) float64 {
	raw := strings.TrimSpace(p.getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return v
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(p.getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return v
}

func (p *parser) fail(key, raw string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
}
