package main

import (
	"context"
	"fmt"

	"github.com/gnames/gn"
	"github.com/morphdb/morphdb/internal/iodb"
	"github.com/morphdb/morphdb/internal/iostore"
	"github.com/morphdb/morphdb/pkg/schema"
	"github.com/spf13/cobra"
)

var varietyDesc string

func getVarietyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variety <species-name> <variety-name>",
		Short: "Attaches a variety to a species record",
		Long: `Attaches a variety to an existing species record.

The species must already exist in the catalog. Varieties appear in
'morphdb show' output and in the flattened '变种' column of exports.

Examples:
  morphdb variety 北柴胡 狭叶变种
  morphdb variety 北柴胡 狭叶变种 --desc "叶较窄, 线形"`,
		Args: cobra.ExactArgs(2),
		RunE: runVariety,
	}

	cmd.Flags().StringVar(&varietyDesc, "desc", "",
		"free-text description of the variety")

	return cmd
}

func runVariety(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	op := iodb.NewSqliteOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	st := iostore.New(op)

	sp, err := st.GetByName(ctx, args[0])
	if err != nil {
		return err
	}
	if sp == nil {
		return fmt.Errorf("species %q not found; add it first", args[0])
	}

	v := &schema.Variety{
		SpeciesID:   sp.ID,
		Name:        args[1],
		Description: varietyDesc,
	}
	if _, err := st.AddVariety(ctx, v); err != nil {
		return err
	}

	gn.Info("Attached variety <em>%s</em> to <em>%s</em>",
		v.Name, sp.SpeciesName)
	return nil
}
