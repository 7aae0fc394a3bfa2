package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/morphdb/morphdb/internal/iodb"
	"github.com/morphdb/morphdb/internal/ioquery"
	"github.com/morphdb/morphdb/pkg/catalog"
	"github.com/spf13/cobra"
)

var (
	searchFilters []string
	searchLimit   int
)

func getSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Searches species records",
		Long: `Searches species records by free text and per-field filters.

The free-text query matches species name, leaf shape and fruit shape.
Filters constrain individual columns and combine with AND: numeric
columns match as lower bounds (value or greater), text columns as
substring containment. Run 'morphdb search --fields' to list the
filterable columns.

Results are ordered by species name.

Examples:
  morphdb search 柴胡
  morphdb search --filter min_height_cm=50
  morphdb search 线形 --filter growth_form=丛生 --limit 10`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().StringArrayVarP(&searchFilters, "filter", "f", nil,
		"column filter as column=value (repeatable)")
	cmd.Flags().IntVarP(&searchLimit, "limit", "l", 0,
		"maximum number of results (0 for all)")
	cmd.Flags().Bool("fields", false,
		"list filterable columns and exit")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	if ok, _ := cmd.Flags().GetBool("fields"); ok {
		printFields()
		return nil
	}

	ctx := context.Background()
	cfg := getConfig()

	var query string
	if len(args) > 0 {
		query = args[0]
	}

	filters, err := parseFilters(searchFilters)
	if err != nil {
		return err
	}

	op := iodb.NewSqliteOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	searcher := ioquery.New(op)
	results, err := searcher.Search(ctx, query, filters, searchLimit)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No matching records.")
		return nil
	}

	for _, sp := range results {
		line := sp.SpeciesName
		if sp.GrowthForm != "" {
			line += "  [" + sp.GrowthForm + "]"
		}
		if sp.MinHeightCm.Valid {
			line += fmt.Sprintf("  height ≥ %v cm", sp.MinHeightCm.Float64)
		}
		fmt.Println(line)
	}
	fmt.Printf("\n%s record(s)\n", humanize.Comma(int64(len(results))))

	return nil
}

// parseFilters splits repeated column=value flags into a filter map.
func parseFilters(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	filters := make(map[string]string, len(raw))
	for _, f := range raw {
		col, val, found := strings.Cut(f, "=")
		if !found || col == "" {
			return nil, fmt.Errorf(
				"invalid filter %q: expected column=value", f)
		}
		filters[col] = val
	}
	return filters, nil
}

func printFields() {
	fmt.Println("Filterable columns:")
	for _, f := range catalog.Fields() {
		kind := "text (substring match)"
		if f.Kind == catalog.KindNumeric || f.Kind == catalog.KindInteger {
			kind = "numeric (lower bound)"
		}
		fmt.Printf("  %-32s %-10s %s\n", f.Column, f.Header, kind)
	}
}
