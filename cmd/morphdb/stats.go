package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/morphdb/morphdb/internal/iodb"
	"github.com/morphdb/morphdb/internal/iostore"
	"github.com/spf13/cobra"
)

func getStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Prints aggregate counts over the catalog",
		Long: `Prints aggregate counts over the catalog: total species and the
number of distinct growth forms, leaf shapes and fruit shapes, plus
the list of growth forms present.

Examples:
  morphdb stats`,
		RunE: runStats,
	}
	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	op := iodb.NewSqliteOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	st := iostore.New(op)

	stats, err := st.Statistics(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Catalog statistics:")
	fmt.Printf("  Species:      %s\n", humanize.Comma(int64(stats.TotalSpecies)))
	fmt.Printf("  Growth forms: %s\n", humanize.Comma(int64(stats.GrowthForms)))
	fmt.Printf("  Leaf shapes:  %s\n", humanize.Comma(int64(stats.LeafShapes)))
	fmt.Printf("  Fruit shapes: %s\n", humanize.Comma(int64(stats.FruitShapes)))

	forms, err := st.GrowthForms(ctx)
	if err != nil {
		return err
	}
	if len(forms) > 0 {
		fmt.Printf("\nGrowth forms: %s\n", strings.Join(forms, ", "))
	}

	return nil
}
