package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/morphdb/morphdb/internal/iodb"
	"github.com/morphdb/morphdb/internal/ioexport"
	"github.com/morphdb/morphdb/internal/iostore"
	"github.com/spf13/cobra"
)

var exportOutput string

func getExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exports the full catalog to CSV",
		Long: `Exports every species record to CSV, ordered by species name.

The output is UTF-8 with a byte-order marker so spreadsheet
applications open it correctly, and reuses the import headers so an
export can be re-imported. Variety names are flattened into a final
'变种' column.

Writes to stdout unless --output is given.

Examples:
  morphdb export -o catalog.csv
  morphdb export > catalog.csv`,
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"output file (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	op := iodb.NewSqliteOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	exp := ioexport.New(iostore.New(op))

	w := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOutput, err)
		}
		defer f.Close()
		w = f
	}

	count, err := exp.ExportCSV(ctx, w)
	if err != nil {
		return err
	}

	if exportOutput != "" {
		gn.Info("Exported <em>%s</em> record(s) to <em>%s</em>",
			humanize.Comma(int64(count)), exportOutput)
	}
	return nil
}
