package m_category

// Field name constants for the categories table.
const (
	TableName = "categories"

	Slug              = "slug"
	Position          = "position"
	Name              = "name"
	Description       = "description"
	Eyebrow           = "eyebrow"
	HeroTitle         = "hero_title"
	DisplayOnHome     = "display_on_home"
	HasProductListing = "has_product_listing"
)

// Columns lists the columns read back into Data, in table order.
var Columns = []string{
	Slug,
	Position,
	Name,
	Description,
	Eyebrow,
	HeroTitle,
	DisplayOnHome,
	HasProductListing,
}
