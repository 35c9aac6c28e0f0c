package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
)

// statusClientClosedRequest is reported when the caller went away before the query finished.
const statusClientClosedRequest = 499

// mapDomainErrorToHTTP converts domain errors to an HTTP status and a public message.
func mapDomainErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "product not found"

	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "category not found"

	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest, "request cancelled"

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"

	case errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, "catalog unavailable"

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapDomainErrorToHTTP(err)
	if status >= http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, ErrorResponse{Error: message})
}
