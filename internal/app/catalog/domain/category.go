package domain

// Category identifies a storefront category by its slug.
// The zero value means "no category selected".
type Category string

// Category slugs of the storefront taxonomy.
const (
	CategoryPet     Category = "pet"
	CategoryPiscina Category = "piscina"
	CategoryJardim  Category = "jardim"
	CategoryAgro    Category = "agro"
	CategoryVet     Category = "vet"
)

// CategoryDefinition describes one entry of the category taxonomy.
type CategoryDefinition struct {
	Slug              Category `json:"slug"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Eyebrow           string   `json:"eyebrow,omitempty"`
	HeroTitle         string   `json:"heroTitle,omitempty"`
	DisplayOnHome     bool     `json:"displayOnHome"`
	HasProductListing bool     `json:"hasProductListing"`
}

// CategorySummary is a listing category with the number of catalog products in it.
type CategorySummary struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
	Count int      `json:"count"`
}

// listingCategories are the categories that may appear in a FilterState.
// The catalog store may carry more definitions (vet has no product listing).
var listingCategories = []Category{
	CategoryPet,
	CategoryPiscina,
	CategoryJardim,
	CategoryAgro,
}

// ListingCategories returns the categories that participate in product listing.
func ListingCategories() []Category {
	out := make([]Category, len(listingCategories))
	copy(out, listingCategories)
	return out
}

// IsListing reports whether c is a category that can filter the product listing.
func (c Category) IsListing() bool {
	for _, lc := range listingCategories {
		if lc == c {
			return true
		}
	}
	return false
}

// String returns the slug.
func (c Category) String() string {
	return string(c)
}
