package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
)

// DefaultClientTimeout bounds a single request when the caller sets no deadline.
const DefaultClientTimeout = 10 * time.Second

// Client calls a catalog server over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the server at baseURL, e.g. "http://localhost:8080".
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultClientTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListProducts calls GET /api/produtos with params as the query string.
func (c *Client) ListProducts(ctx context.Context, params domain.Params) (*domain.ResultPage, error) {
	var page domain.ResultPage
	if err := c.get(ctx, "/api/produtos", params.Values(), &page); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if page.Products == nil {
		page.Products = []domain.Product{}
	}
	return &page, nil
}

// GetProduct calls GET /api/produtos/{slug}.
func (c *Client) GetProduct(ctx context.Context, slug string) (*domain.ProductDetails, error) {
	var details domain.ProductDetails
	if err := c.get(ctx, "/api/produtos/"+url.PathEscape(slug), nil, &details); err != nil {
		return nil, fmt.Errorf("failed to get product %q: %w", slug, err)
	}
	return &details, nil
}

// ListCategories calls GET /api/categorias.
func (c *Client) ListCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	var summaries []domain.CategorySummary
	if err := c.get(ctx, "/api/categorias", nil, &summaries); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return summaries, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Cancellation is reported as the bare context error.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// statusError maps a non-200 response back to the domain error the server started from.
func statusError(resp *http.Response) error {
	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		body.Error = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		if strings.Contains(body.Error, "product") {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("not found: %s", body.Error)
	case http.StatusServiceUnavailable, http.StatusTooManyRequests, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, body.Error)
	default:
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, body.Error)
	}
}

var _ contracts.CatalogClient = (*Client)(nil)
