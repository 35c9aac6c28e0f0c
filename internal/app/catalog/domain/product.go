package domain

import "time"

// Product is a read-only catalog record.
// It is owned by the catalog store; the query engine never mutates it.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Category    Category   `json:"category"`
	Image       string     `json:"image,omitempty"`
	ImageAlt    string     `json:"imageAlt,omitempty"`
	Rating      float64    `json:"rating"`
	InStock     bool       `json:"inStock"`
	Tags        []string   `json:"tags"`
	Highlight   bool       `json:"highlight,omitempty"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty"`
	AvailableAt []string   `json:"availableAt,omitempty"`
}

// ProductDetails is a product together with related products of the same category.
type ProductDetails struct {
	Product Product   `json:"product"`
	Similar []Product `json:"similar"`
}
