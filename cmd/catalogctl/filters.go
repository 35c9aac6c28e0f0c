package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
)

// filterFlags are the FilterState fields settable from the command line.
type filterFlags struct {
	search      string
	category    string
	sort        string
	inStockOnly bool
	priceMin    string
	priceMax    string
	page        int
	pageSize    int
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "q", "", "Search text; every word must match")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "Category: pet, piscina, jardim or agro")
	cmd.Flags().StringVarP(&f.sort, "sort", "s", string(domain.DefaultSort), "Sort: relevance, price_asc, price_desc, rating_desc or newest")
	cmd.Flags().BoolVar(&f.inStockOnly, "in-stock", false, "Only products in stock")
	cmd.Flags().StringVar(&f.priceMin, "price-min", "", "Minimum price")
	cmd.Flags().StringVar(&f.priceMax, "price-max", "", "Maximum price")
	cmd.Flags().IntVar(&f.page, "page", domain.DefaultPage, "Page number")
	cmd.Flags().IntVar(&f.pageSize, "page-size", domain.DefaultPageSize, "Products per page")
}

// state parses the flags the way the storefront parses its URL, so bad values
// fall back to defaults instead of failing.
func (f *filterFlags) state() domain.FilterState {
	return domain.FromParams(domain.Params{
		domain.ParamSearch:   f.search,
		domain.ParamCategory: f.category,
		domain.ParamSort:     f.sort,
		domain.ParamInStock:  strconv.FormatBool(f.inStockOnly),
		domain.ParamPriceMin: f.priceMin,
		domain.ParamPriceMax: f.priceMax,
		domain.ParamPage:     strconv.Itoa(f.page),
		domain.ParamPageSize: strconv.Itoa(f.pageSize),
	})
}
