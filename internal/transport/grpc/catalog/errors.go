package catalog

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return status.Error(codes.NotFound, "product not found")

	case errors.Is(err, domain.ErrCategoryNotFound):
		return status.Error(codes.NotFound, "category not found")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request cancelled")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, domain.ErrCatalogUnavailable):
		return status.Error(codes.Unavailable, "catalog unavailable")

	default:
		// Unknown error - return Internal
		return status.Error(codes.Internal, "internal server error")
	}
}

// mapGRPCErrorToDomain is the client-side inverse of mapDomainErrorToGRPC.
// Cancellation always comes back as the bare context error.
func mapGRPCErrorToDomain(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return domain.ErrProductNotFound
	case codes.Canceled:
		return context.Canceled
	case codes.DeadlineExceeded:
		return context.DeadlineExceeded
	case codes.Unavailable, codes.ResourceExhausted:
		return fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, st.Message())
	default:
		return fmt.Errorf("catalog query failed (%s): %s", st.Code(), st.Message())
	}
}
