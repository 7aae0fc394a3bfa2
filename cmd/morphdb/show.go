package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/morphdb/morphdb/internal/iodb"
	"github.com/morphdb/morphdb/internal/iostore"
	"github.com/morphdb/morphdb/pkg/catalog"
	"github.com/morphdb/morphdb/pkg/schema"
	"github.com/spf13/cobra"
)

var showByID bool

func getShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <species-name>",
		Short: "Shows one species record with its varieties",
		Long: `Shows one species record, including every recorded field and the
varieties attached to it.

The record is looked up by species name. Use --id to look up by the
numeric record id instead.

Examples:
  morphdb show 北柴胡
  morphdb show --id 42`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().BoolVar(&showByID, "id", false,
		"look up by record id instead of species name")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	op := iodb.NewSqliteOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	st := iostore.New(op)

	var sp *schema.Species
	var err error
	if showByID {
		id, convErr := strconv.ParseInt(args[0], 10, 64)
		if convErr != nil {
			return fmt.Errorf("invalid record id %q", args[0])
		}
		sp, err = st.GetByID(ctx, id)
	} else {
		sp, err = st.GetByName(ctx, args[0])
	}
	if err != nil {
		return err
	}
	if sp == nil {
		fmt.Printf("No record found for %q.\n", args[0])
		return nil
	}

	fmt.Printf("%s (id %d)\n", sp.SpeciesName, sp.ID)
	for _, f := range catalog.Fields() {
		if f.Column == catalog.NameColumn {
			continue
		}
		v := sp.ColumnValue(f.Column)
		if v == "" {
			continue
		}
		fmt.Printf("  %-12s %s\n", f.Header+":", v)
	}

	varieties, err := st.VarietiesOf(ctx, sp.ID)
	if err != nil {
		return err
	}
	if len(varieties) > 0 {
		fmt.Println("\nVarieties:")
		for _, v := range varieties {
			if v.Description != "" {
				fmt.Printf("  - %s: %s\n", v.Name, v.Description)
			} else {
				fmt.Printf("  - %s\n", v.Name)
			}
		}
	}

	return nil
}
