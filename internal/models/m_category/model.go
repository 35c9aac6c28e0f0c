package m_category

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the categories table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting or replacing a category.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName, Columns, []interface{}{
		data.Slug,
		data.Position,
		data.Name,
		data.Description,
		data.Eyebrow,
		data.HeroTitle,
		data.DisplayOnHome,
		data.HasProductListing,
	})
}
