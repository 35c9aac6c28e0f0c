package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
)

func printProducts(w io.Writer, products []domain.Product) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSLUG\tCATEGORY\tPRICE\tRATING\tSTOCK")
	for i, p := range products {
		stock := "yes"
		if !p.InStock {
			stock = "no"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f\t%s\n", i+1, p.Slug, p.Category, formatPrice(p.Price), p.Rating, stock)
	}
	tw.Flush()
}

func printMeta(w io.Writer, meta domain.FiltersMeta) {
	fmt.Fprintf(w, "%s | page %d (%d per page)", meta.Summary(), meta.Page, meta.PageSize)
	if meta.Total > 0 {
		fmt.Fprintf(w, " | %s - %s", formatPrice(meta.PriceRange.Min), formatPrice(meta.PriceRange.Max))
	}
	if meta.HasMore {
		fmt.Fprint(w, " | more available")
	}
	fmt.Fprintln(w)
}

func printCategories(w io.Writer, summaries []domain.CategorySummary) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLABEL\tPRODUCTS")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", s.ID, s.Label, s.Count)
	}
	tw.Flush()
}

func printDetails(w io.Writer, d *domain.ProductDetails) {
	p := d.Product
	fmt.Fprintf(w, "%s\n%s\n\n", p.Name, strings.Repeat("=", len([]rune(p.Name))))
	fmt.Fprintf(w, "slug:      %s\n", p.Slug)
	fmt.Fprintf(w, "category:  %s\n", p.Category)
	fmt.Fprintf(w, "price:     %s\n", formatPrice(p.Price))
	fmt.Fprintf(w, "rating:    %.1f\n", p.Rating)
	fmt.Fprintf(w, "in stock:  %t\n", p.InStock)
	if len(p.Tags) > 0 {
		fmt.Fprintf(w, "tags:      %s\n", strings.Join(p.Tags, ", "))
	}
	fmt.Fprintf(w, "\n%s\n", p.Description)
	if len(d.Similar) > 0 {
		fmt.Fprintln(w, "\nSimilar products:")
		printProducts(w, d.Similar)
	}
}

func formatPrice(v float64) string {
	m, err := domain.MoneyFromFloat(v)
	if err != nil {
		return "-"
	}
	return "R$ " + m.String()
}
