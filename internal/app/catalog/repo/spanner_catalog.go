package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-catalog/internal/models/m_category"
	"github.com/light-bringer/storefront-catalog/internal/models/m_product"
	"github.com/light-bringer/storefront-catalog/internal/pkg/query"
)

// SpannerCatalog implements CatalogStore for Spanner.
type SpannerCatalog struct {
	client        *spanner.Client
	productModel  *m_product.Model
	categoryModel *m_category.Model
}

// NewSpannerCatalog creates a new Spanner-backed catalog store.
func NewSpannerCatalog(client *spanner.Client) *SpannerCatalog {
	return &SpannerCatalog{
		client:        client,
		productModel:  m_product.NewModel(),
		categoryModel: m_category.NewModel(),
	}
}

// ProductsStatement selects every product in catalog order.
func ProductsStatement() spanner.Statement {
	return query.From(m_product.TableName).
		Select(m_product.Columns...).
		OrderBy(m_product.Position, query.Asc).
		Build()
}

// CategoriesStatement selects the taxonomy in display order.
func CategoriesStatement() spanner.Statement {
	return query.From(m_category.TableName).
		Select(m_category.Columns...).
		OrderBy(m_category.Position, query.Asc).
		Build()
}

// ProductBySlugStatement selects the product with slug.
func ProductBySlugStatement(slug string) spanner.Statement {
	return query.From(m_product.TableName).
		Select(m_product.Columns...).
		Where(query.Eq(m_product.Slug, slug)).
		Limit(1).
		Build()
}

// ProductsInCategoryStatement selects up to limit products of category in catalog order, skipping excludeSlug.
func ProductsInCategoryStatement(category domain.Category, excludeSlug string, limit int) spanner.Statement {
	return query.From(m_product.TableName).
		Select(m_product.Columns...).
		Where(query.Eq(m_product.Category, string(category))).
		Where(query.Ne(m_product.Slug, excludeSlug)).
		OrderBy(m_product.Position, query.Asc).
		Limit(int64(limit)).
		Build()
}

// AllProducts reads the whole products table ordered by position.
func (c *SpannerCatalog) AllProducts(ctx context.Context) ([]domain.Product, error) {
	return c.queryProducts(ctx, ProductsStatement())
}

// ProductBySlug reads one product by its unique slug.
func (c *SpannerCatalog) ProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	products, err := c.queryProducts(ctx, ProductBySlugStatement(slug))
	if err != nil {
		return domain.Product{}, err
	}
	if len(products) == 0 {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return products[0], nil
}

// ProductsInCategory reads the first limit products of category other than excludeSlug.
func (c *SpannerCatalog) ProductsInCategory(ctx context.Context, category domain.Category, excludeSlug string, limit int) ([]domain.Product, error) {
	if limit < 1 {
		return []domain.Product{}, nil
	}
	return c.queryProducts(ctx, ProductsInCategoryStatement(category, excludeSlug, limit))
}

func (c *SpannerCatalog) queryProducts(ctx context.Context, stmt spanner.Statement) ([]domain.Product, error) {
	iter := c.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := []domain.Product{}
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		product, err := dataToProduct(&data)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// CategoryDefinitions reads the categories table ordered by position.
func (c *SpannerCatalog) CategoryDefinitions(ctx context.Context) ([]domain.CategoryDefinition, error) {
	iter := c.client.Single().Query(ctx, CategoriesStatement())
	defer iter.Stop()

	var defs []domain.CategoryDefinition
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate categories: %w", err)
		}

		var data m_category.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse category: %w", err)
		}
		defs = append(defs, dataToCategory(&data))
	}

	return defs, nil
}

// ProductInsertMut creates a mutation storing p at the given catalog position.
// Returns error if the price is not finite.
func (c *SpannerCatalog) ProductInsertMut(p domain.Product, position int) (*spanner.Mutation, error) {
	data, err := productToData(p, position)
	if err != nil {
		return nil, err
	}
	return c.productModel.InsertMut(data), nil
}

// CategoryInsertMut creates a mutation storing def at the given display position.
func (c *SpannerCatalog) CategoryInsertMut(def domain.CategoryDefinition, position int) *spanner.Mutation {
	return c.categoryModel.InsertMut(categoryToData(def, position))
}

func dataToProduct(data *m_product.Data) (domain.Product, error) {
	price, err := domain.NewMoney(data.PriceNumerator, data.PriceDenominator)
	if err != nil {
		return domain.Product{}, fmt.Errorf("invalid price for product %s: %w", data.ProductID, err)
	}

	p := domain.Product{
		ID:          data.ProductID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Price:       price.Float64(),
		Category:    domain.Category(data.Category),
		Image:       data.Image.StringVal,
		ImageAlt:    data.ImageAlt.StringVal,
		Rating:      data.Rating,
		InStock:     data.InStock,
		Tags:        data.Tags,
		Highlight:   data.Highlight,
		AvailableAt: data.AvailableAt,
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if data.ReleaseDate.Valid {
		t := data.ReleaseDate.Time
		p.ReleaseDate = &t
	}
	return p, nil
}

func productToData(p domain.Product, position int) (*m_product.Data, error) {
	price, err := domain.MoneyFromFloat(p.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid price for product %s: %w", p.ID, err)
	}

	data := &m_product.Data{
		ProductID:        p.ID,
		Position:         int64(position),
		Name:             p.Name,
		Slug:             p.Slug,
		Description:      p.Description,
		PriceNumerator:   price.Numerator(),
		PriceDenominator: price.Denominator(),
		Category:         string(p.Category),
		Image:            spanner.NullString{StringVal: p.Image, Valid: p.Image != ""},
		ImageAlt:         spanner.NullString{StringVal: p.ImageAlt, Valid: p.ImageAlt != ""},
		Rating:           p.Rating,
		InStock:          p.InStock,
		Tags:             p.Tags,
		Highlight:        p.Highlight,
		AvailableAt:      p.AvailableAt,
	}
	if p.ReleaseDate != nil {
		data.ReleaseDate = spanner.NullTime{Time: *p.ReleaseDate, Valid: true}
	}
	return data, nil
}

func dataToCategory(data *m_category.Data) domain.CategoryDefinition {
	return domain.CategoryDefinition{
		Slug:              domain.Category(data.Slug),
		Name:              data.Name,
		Description:       data.Description,
		Eyebrow:           data.Eyebrow,
		HeroTitle:         data.HeroTitle,
		DisplayOnHome:     data.DisplayOnHome,
		HasProductListing: data.HasProductListing,
	}
}

func categoryToData(def domain.CategoryDefinition, position int) *m_category.Data {
	return &m_category.Data{
		Slug:              string(def.Slug),
		Position:          int64(position),
		Name:              def.Name,
		Description:       def.Description,
		Eyebrow:           def.Eyebrow,
		HeroTitle:         def.HeroTitle,
		DisplayOnHome:     def.DisplayOnHome,
		HasProductListing: def.HasProductListing,
	}
}

var (
	_ contracts.CatalogStore  = (*SpannerCatalog)(nil)
	_ contracts.ProductLookup = (*SpannerCatalog)(nil)
)
