package m_category

// Data represents the database model for the categories table.
type Data struct {
	Slug              string `spanner:"slug"`
	Position          int64  `spanner:"position"`
	Name              string `spanner:"name"`
	Description       string `spanner:"description"`
	Eyebrow           string `spanner:"eyebrow"`
	HeroTitle         string `spanner:"hero_title"`
	DisplayOnHome     bool   `spanner:"display_on_home"`
	HasProductListing bool   `spanner:"has_product_listing"`
}
