package m_product

import (
	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
// Position keeps the catalog order, which is the relevance tie-break.
type Data struct {
	ProductID        string             `spanner:"product_id"`
	Position         int64              `spanner:"position"`
	Name             string             `spanner:"name"`
	Slug             string             `spanner:"slug"`
	Description      string             `spanner:"description"`
	PriceNumerator   int64              `spanner:"price_numerator"`
	PriceDenominator int64              `spanner:"price_denominator"`
	Category         string             `spanner:"category"`
	Image            spanner.NullString `spanner:"image"`
	ImageAlt         spanner.NullString `spanner:"image_alt"`
	Rating           float64            `spanner:"rating"`
	InStock          bool               `spanner:"in_stock"`
	Tags             []string           `spanner:"tags"`
	Highlight        bool               `spanner:"highlight"`
	ReleaseDate      spanner.NullTime   `spanner:"release_date"`
	AvailableAt      []string           `spanner:"available_at"`
}
