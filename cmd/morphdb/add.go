package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/morphdb/morphdb/internal/iodb"
	"github.com/morphdb/morphdb/internal/ioimport"
	"github.com/morphdb/morphdb/internal/iostore"
	"github.com/morphdb/morphdb/pkg/catalog"
	"github.com/morphdb/morphdb/pkg/schema"
	"github.com/spf13/cobra"
)

var (
	addSets    []string
	addReplace bool
)

func getAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <species-name>",
		Short: "Adds a single species record",
		Long: `Adds a single species record to the catalog.

Fields other than the species name are set with repeated --set
column=value flags; values go through the same coercion as CSV import
(placeholders like '未明确' become NULL, ranges like '3-8' keep the
lower bound). Run 'morphdb search --fields' to list columns.

Adding a name that already exists fails unless --replace is given, in
which case the existing record is updated in place, keeping its id
and its varieties.

Examples:
  morphdb add 北柴胡 --set growth_form=丛生 --set min_height_cm=50
  morphdb add 北柴胡 --set max_height_cm=85 --replace`,
		Args: cobra.ExactArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringArrayVarP(&addSets, "set", "s", nil,
		"field value as column=value (repeatable)")
	cmd.Flags().BoolVar(&addReplace, "replace", false,
		"update the record in place if the name already exists")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	sp := &schema.Species{SpeciesName: strings.TrimSpace(args[0])}
	for _, s := range addSets {
		col, val, found := strings.Cut(s, "=")
		if !found || col == "" {
			return fmt.Errorf("invalid --set %q: expected column=value", s)
		}
		f, ok := catalog.FieldByColumn(col)
		if !ok {
			return fmt.Errorf("unknown column %q", col)
		}
		if f.Column == catalog.NameColumn {
			return fmt.Errorf("species name is set by the positional argument")
		}
		ioimport.SetField(sp, f, val)
	}

	op := iodb.NewSqliteOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	st := iostore.New(op)

	if addReplace {
		id, err := st.InsertOrReplace(ctx, sp)
		if err != nil {
			return err
		}
		gn.Info("Saved <em>%s</em> (id %d)", sp.SpeciesName, id)
		return nil
	}

	id, err := st.Insert(ctx, sp)
	if err != nil {
		if iostore.IsDuplicateName(err) {
			return fmt.Errorf(
				"species %q already exists; use --replace to update it",
				sp.SpeciesName)
		}
		return err
	}
	gn.Info("Added <em>%s</em> (id %d)", sp.SpeciesName, id)
	return nil
}
