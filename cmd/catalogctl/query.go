package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var queryFilters filterFlags

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run one catalog query and print the page",
	Example: `  catalogctl query -q "kit jardim"
  catalogctl query -c piscina --in-stock -s price_asc
  catalogctl query -t local --price-min 100 --price-max 300`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, closeClient, err := newClient()
		if err != nil {
			return err
		}
		defer closeClient()

		ctx, cancel := context.WithTimeout(cmd.Context(), reqTimeout)
		defer cancel()

		state := queryFilters.state()
		page, err := client.ListProducts(ctx, state.RequestParams())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(page.Products) == 0 {
			fmt.Fprintln(out, "No products match these filters.")
		} else {
			printProducts(out, page.Products)
		}
		printMeta(out, page.Meta)
		if params := state.ToParams(); len(params) > 0 {
			fmt.Fprintf(out, "URL: ?%s\n", params.Encode())
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List listing categories with product counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, closeClient, err := newClient()
		if err != nil {
			return err
		}
		defer closeClient()

		ctx, cancel := context.WithTimeout(cmd.Context(), reqTimeout)
		defer cancel()

		summaries, err := client.ListCategories(ctx)
		if err != nil {
			return err
		}
		printCategories(cmd.OutOrStdout(), summaries)
		return nil
	},
}

var productCmd = &cobra.Command{
	Use:   "product <slug>",
	Short: "Show one product and its similar products",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, closeClient, err := newClient()
		if err != nil {
			return err
		}
		defer closeClient()

		ctx, cancel := context.WithTimeout(cmd.Context(), reqTimeout)
		defer cancel()

		details, err := client.GetProduct(ctx, args[0])
		if err != nil {
			return err
		}
		printDetails(cmd.OutOrStdout(), details)
		return nil
	},
}

func init() {
	queryFilters.register(queryCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(productCmd)
}
