package domain

import "errors"

// Domain errors as sentinel values
var (
	// Catalog errors
	ErrProductNotFound    = errors.New("product not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCatalogUnavailable = errors.New("catalog store unavailable")

	// Browsing session errors
	ErrLoadMoreUnavailable = errors.New("load more is not available")
	ErrRetryUnavailable    = errors.New("lane has no failed request to retry")
	ErrSessionClosed       = errors.New("browsing session is closed")
)
