package list_products

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/engine"
)

// MaxPageSize caps the page size a caller can request.
const MaxPageSize = 100

// Request carries the raw query parameters of a listing request.
type Request struct {
	Params domain.Params
}

// Query handles the list products query use case.
type Query struct {
	store           contracts.CatalogStore
	engine          *engine.Engine
	defaultPageSize int
	tracer          trace.Tracer
}

// Option configures a Query.
type Option func(*Query)

// WithDefaultPageSize sets the page size used when the request has none or an invalid one.
func WithDefaultPageSize(size int) Option {
	return func(q *Query) {
		if size >= 1 {
			q.defaultPageSize = min(size, MaxPageSize)
		}
	}
}

// NewQuery creates a new list products query.
func NewQuery(store contracts.CatalogStore, eng *engine.Engine, opts ...Option) *Query {
	q := &Query{
		store:           store,
		engine:          eng,
		defaultPageSize: domain.DefaultPageSize,
		tracer:          otel.Tracer("storefront-catalog/queries"),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Execute parses and normalizes the request, runs the engine over the full catalog
// and returns the requested page. Malformed parameters never produce an error.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.ResultPage, error) {
	state := q.Normalize(req.Params)

	ctx, span := q.tracer.Start(ctx, "catalog.list_products",
		trace.WithAttributes(
			attribute.String("filter.search", state.Search),
			attribute.String("filter.category", string(state.Category)),
			attribute.String("filter.sort", string(state.Sort)),
			attribute.Int("page", state.Page),
			attribute.Int("page_size", state.PageSize),
		),
	)
	defer span.End()

	products, err := q.store.AllProducts(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "catalog load failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	_, engineSpan := q.tracer.Start(ctx, "catalog.engine.run",
		trace.WithAttributes(attribute.Int("catalog.size", len(products))),
	)
	page := q.engine.Run(products, state)
	engineSpan.End()

	span.SetAttributes(
		attribute.Int("result.total", page.Meta.Total),
		attribute.Int("result.returned", len(page.Products)),
		attribute.Bool("result.has_more", page.Meta.HasMore),
	)
	return &page, nil
}

// ListProducts lets the query serve as an in-process QueryClient.
func (q *Query) ListProducts(ctx context.Context, params domain.Params) (*domain.ResultPage, error) {
	return q.Execute(ctx, &Request{Params: params})
}

// Normalize turns raw parameters into the FilterState the engine runs.
// Page size falls back to the configured default and is capped at MaxPageSize.
func (q *Query) Normalize(params domain.Params) domain.FilterState {
	state := domain.FromParams(params)
	state.PageSize = min(domain.ParsePositiveInt(params[domain.ParamPageSize], q.defaultPageSize), MaxPageSize)
	return state
}

var _ contracts.QueryClient = (*Query)(nil)
