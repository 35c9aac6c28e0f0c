package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/queries/list_products"
)

// CatalogHandler serves the storefront query endpoints.
// It's a thin coordinator that delegates to the catalog queries.
type CatalogHandler struct {
	listProducts   *list_products.Query
	getProduct     *get_product.Query
	listCategories *list_categories.Query
}

// NewCatalogHandler creates a new HTTP catalog handler.
func NewCatalogHandler(
	listProducts *list_products.Query,
	getProduct *get_product.Query,
	listCategories *list_categories.Query,
) *CatalogHandler {
	return &CatalogHandler{
		listProducts:   listProducts,
		getProduct:     getProduct,
		listCategories: listCategories,
	}
}

// ListProducts handles GET /api/produtos.
// Unknown or malformed parameters are normalized, never rejected.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := domain.ParamsFromValues(r.URL.Query())

	page, err := h.listProducts.Execute(r.Context(), &list_products.Request{Params: params})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// GetProduct handles GET /api/produtos/{slug}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	details, err := h.getProduct.Execute(r.Context(), &get_product.Request{Slug: slug})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, details)
}

// ListCategories handles GET /api/categorias.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.listCategories.Execute(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
