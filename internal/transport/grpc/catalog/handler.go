package catalog

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/queries/list_products"
)

// Handler implements the gRPC CatalogQuery service.
// It's a thin coordinator that delegates to the catalog queries.
type Handler struct {
	listProducts   *list_products.Query
	getProduct     *get_product.Query
	listCategories *list_categories.Query
}

// NewHandler creates a new gRPC catalog handler.
func NewHandler(
	listProducts *list_products.Query,
	getProduct *get_product.Query,
	listCategories *list_categories.Query,
) *Handler {
	return &Handler{
		listProducts:   listProducts,
		getProduct:     getProduct,
		listCategories: listCategories,
	}
}

// ListProducts runs a filter query. Malformed parameters are normalized, never rejected.
func (h *Handler) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	page, err := h.listProducts.Execute(ctx, &list_products.Request{Params: paramsFromStruct(req)})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return toStruct(page)
}

// GetProduct returns a product and its similar products.
func (h *Handler) GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	slug, err := validateGetProductRequest(req)
	if err != nil {
		return nil, err
	}

	details, err := h.getProduct.Execute(ctx, &get_product.Request{Slug: slug})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return toStruct(details)
}

// ListCategories returns product counts per listing category.
func (h *Handler) ListCategories(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	summaries, err := h.listCategories.Execute(ctx)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return toStruct(categoriesReply{Categories: summaries})
}

var _ CatalogQueryServer = (*Handler)(nil)
