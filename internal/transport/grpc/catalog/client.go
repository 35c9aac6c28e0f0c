package catalog

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
)

// Client calls the catalog query service over a gRPC connection.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient creates a client on an existing connection.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Dial opens an insecure connection to target, e.g. "localhost:9090".
// The caller closes the returned connection.
func Dial(target string, opts ...grpc.DialOption) (*Client, *grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create gRPC client: %w", err)
	}
	return NewClient(conn), conn, nil
}

// ListProducts calls CatalogQuery/ListProducts.
func (c *Client) ListProducts(ctx context.Context, params domain.Params) (*domain.ResultPage, error) {
	reply := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, ListProductsMethod, paramsToStruct(params), reply); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", mapGRPCErrorToDomain(ctx, err))
	}

	var page domain.ResultPage
	if err := fromStruct(reply, &page); err != nil {
		return nil, err
	}
	if page.Products == nil {
		page.Products = []domain.Product{}
	}
	return &page, nil
}

// GetProduct calls CatalogQuery/GetProduct.
func (c *Client) GetProduct(ctx context.Context, slug string) (*domain.ProductDetails, error) {
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldSlug: structpb.NewStringValue(slug),
	}}
	reply := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, GetProductMethod, req, reply); err != nil {
		return nil, fmt.Errorf("failed to get product %q: %w", slug, mapGRPCErrorToDomain(ctx, err))
	}

	var details domain.ProductDetails
	if err := fromStruct(reply, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// ListCategories calls CatalogQuery/ListCategories.
func (c *Client) ListCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	reply := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, ListCategoriesMethod, &structpb.Struct{}, reply); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", mapGRPCErrorToDomain(ctx, err))
	}

	var out categoriesReply
	if err := fromStruct(reply, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

var _ contracts.CatalogClient = (*Client)(nil)
