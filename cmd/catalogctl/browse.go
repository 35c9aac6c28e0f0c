package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/browsing"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
)

const browseHelp = `commands:
  search <text>         set the search text (empty clears it)
  category [id]         filter by category (no id clears it)
  sort <mode>           relevance, price_asc, price_desc, rating_desc, newest
  stock on|off          only products in stock
  price <min> <max>     price bounds, "-" for no bound
  pagesize <n>          products per page
  more                  load the next page
  retry                 retry the failed request
  reset                 back to the starting filters
  show                  print the current list
  quit                  leave`

var errQuit = errors.New("quit")

var browseFilters filterFlags

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse interactively; every filter change refetches and 'more' appends the next page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, closeClient, err := newClient()
		if err != nil {
			return err
		}
		defer closeClient()

		return runBrowse(cmd.Context(), client, browseFilters.state(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	browseFilters.register(browseCmd)
	rootCmd.AddCommand(browseCmd)
}

// runBrowse drives a browsing session from line commands read from in.
// The first page is fetched once up front and handed to the session as its initial page.
func runBrowse(ctx context.Context, client contracts.QueryClient, initial domain.FilterState, in io.Reader, out io.Writer) error {
	firstCtx, cancel := context.WithTimeout(ctx, reqTimeout)
	first, err := client.ListProducts(firstCtx, initial.RequestParams())
	cancel()
	if err != nil {
		return fmt.Errorf("failed to load first page: %w", err)
	}

	nav := contracts.NavigatorFunc(func(p domain.Params) {
		fmt.Fprintf(out, "URL: ?%s\n", p.Encode())
	})
	session := browsing.NewSession(client, nav, initial, *first,
		browsing.WithContext(ctx),
		browsing.WithLogger(log.New(out, "", 0)),
	)
	defer session.Close()

	render(out, session)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		err := execute(session, scanner.Text(), out)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, reqTimeout)
		err = session.Wait(waitCtx)
		cancel()
		if err != nil {
			fmt.Fprintf(out, "still loading: %v\n", err)
			continue
		}
		render(out, session)
	}
}

func execute(s *browsing.Session, line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "search", "q":
		return s.SetSearch(strings.Join(args, " "))

	case "category", "c":
		if len(args) == 0 {
			return s.SetCategory("")
		}
		category := domain.Category(args[0])
		if !category.IsListing() {
			return fmt.Errorf("unknown category %q", args[0])
		}
		return s.SetCategory(category)

	case "sort":
		if len(args) != 1 || !domain.SortMode(args[0]).Valid() {
			return fmt.Errorf("usage: sort relevance|price_asc|price_desc|rating_desc|newest")
		}
		return s.SetSort(domain.SortMode(args[0]))

	case "stock":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return fmt.Errorf("usage: stock on|off")
		}
		return s.SetInStockOnly(args[0] == "on")

	case "price":
		if len(args) != 2 {
			return fmt.Errorf("usage: price <min> <max>")
		}
		minPrice, err := parseBound(args[0])
		if err != nil {
			return err
		}
		maxPrice, err := parseBound(args[1])
		if err != nil {
			return err
		}
		return s.SetPriceRange(minPrice, maxPrice)

	case "pagesize":
		if len(args) != 1 {
			return fmt.Errorf("usage: pagesize <n>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("page size must be a positive number")
		}
		return s.SetPageSize(n)

	case "more":
		return s.LoadMore()

	case "retry":
		if s.LaneState(browsing.LaneRefetch) == browsing.LaneFailed {
			return s.Retry(browsing.LaneRefetch)
		}
		return s.Retry(browsing.LaneLoadMore)

	case "reset":
		return s.Reset()

	case "show":
		return nil

	case "help", "?":
		fmt.Fprintln(out, browseHelp)
		return nil

	case "quit", "exit":
		return errQuit

	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
}

func parseBound(raw string) (*float64, error) {
	if raw == "-" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", raw)
	}
	return &v, nil
}

func render(out io.Writer, s *browsing.Session) {
	if s.LaneState(browsing.LaneRefetch) == browsing.LaneFailed {
		fmt.Fprintf(out, "Could not load products: %v (type 'retry')\n", s.LaneErr(browsing.LaneRefetch))
	}

	switch {
	case s.Empty():
		fmt.Fprintln(out, "No products match these filters. Try 'reset'.")
	default:
		printProducts(out, s.Products())
		printMeta(out, s.Meta())
	}

	if s.LaneState(browsing.LaneLoadMore) == browsing.LaneFailed {
		fmt.Fprintf(out, "Could not load more products: %v (type 'retry')\n", s.LaneErr(browsing.LaneLoadMore))
	}
}
