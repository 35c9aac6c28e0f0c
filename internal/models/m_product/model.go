package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting or replacing a product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			ProductID,
			Position,
			Name,
			Slug,
			Description,
			PriceNumerator,
			PriceDenominator,
			Category,
			Image,
			ImageAlt,
			Rating,
			InStock,
			Tags,
			Highlight,
			ReleaseDate,
			AvailableAt,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.ProductID,
			data.Position,
			data.Name,
			data.Slug,
			data.Description,
			data.PriceNumerator,
			data.PriceDenominator,
			data.Category,
			data.Image,
			data.ImageAlt,
			data.Rating,
			data.InStock,
			data.Tags,
			data.Highlight,
			data.ReleaseDate,
			data.AvailableAt,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a product.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
