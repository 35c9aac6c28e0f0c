package domain

import "fmt"

// PriceRange is the lowest and highest price of a product set.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FiltersMeta describes the filtered set independently of which page was returned.
// InStock never exceeds Total; PriceRange covers the whole filtered set.
type FiltersMeta struct {
	Total      int        `json:"total"`
	InStock    int        `json:"inStock"`
	PriceRange PriceRange `json:"priceRange"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	HasMore    bool       `json:"hasMore"`
}

// Summary renders the results line shown above the product grid.
func (m FiltersMeta) Summary() string {
	noun := "itens"
	if m.Total == 1 {
		noun = "item"
	}
	return fmt.Sprintf("%d %s • %d em estoque imediato", m.Total, noun, m.InStock)
}

// ResultPage is one page of query results plus metadata of the full filtered set.
type ResultPage struct {
	Products []Product   `json:"products"`
	Meta     FiltersMeta `json:"meta"`
}
