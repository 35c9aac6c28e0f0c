package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID        = "product_id"
	Position         = "position"
	Name             = "name"
	Slug             = "slug"
	Description      = "description"
	PriceNumerator   = "price_numerator"
	PriceDenominator = "price_denominator"
	Category         = "category"
	Image            = "image"
	ImageAlt         = "image_alt"
	Rating           = "rating"
	InStock          = "in_stock"
	Tags             = "tags"
	Highlight        = "highlight"
	ReleaseDate      = "release_date"
	AvailableAt      = "available_at"
	CreatedAt        = "created_at"
	UpdatedAt        = "updated_at"
)

// Columns lists the columns read back into Data, in table order.
var Columns = []string{
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
}
