package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/morphdb/morphdb/internal/iodb"
	"github.com/morphdb/morphdb/internal/ioimport"
	"github.com/morphdb/morphdb/internal/iostore"
	"github.com/morphdb/morphdb/pkg/config"
	"github.com/morphdb/morphdb/pkg/errcode"
	"github.com/spf13/cobra"
)

var (
	importMaxErrors       int
	importRangeLowerBound bool
)

func getImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Imports species records from a CSV file",
		Long: `Imports species morphology records from a CSV spreadsheet export.

The first row must be a header row; the '物种' (species name) column is
mandatory, all other columns are optional. Files are decoded as UTF-8,
falling back to GBK for legacy spreadsheet exports.

Rows are imported independently: a malformed row is reported and
skipped, rows whose species name already exists in the catalog are
counted as duplicates and skipped, and all remaining rows are
inserted. The command prints a summary report at the end.

Examples:
  morphdb import records.csv
  morphdb import records.csv --max-errors 50`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().IntVar(&importMaxErrors, "max-errors", 20,
		"maximum number of row errors to print (0 for all)")
	cmd.Flags().BoolVar(&importRangeLowerBound, "range-lower-bound", true,
		"collapse range cells like '3-8' to the lower bound; "+
			"with =false they import as NULL")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	if cmd.Flags().Changed("range-lower-bound") {
		b := importRangeLowerBound
		cfg.Update([]config.Option{config.OptImportRangeLowerBound(&b)})
	}

	op := iodb.NewSqliteOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s</em>", cfg.Database.Path)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return err
	}

	if !hasTables {
		err = &gn.Error{
			Code: errcode.DBEmptyDatabaseError,
			Msg: `<err>Database appears to be empty.</err>
   Run <em>'morphdb create'</em> first to initialize the schema.`,
			Err: errors.New("cannot import data into empty database"),
		}
		return err
	}

	st := iostore.New(op)
	imp := ioimport.New(cfg, st)

	gn.Info("Importing records from <em>%s</em>...", args[0])
	report, err := imp.ImportFile(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Println("\nImport report:")
	fmt.Printf("  Rows read:  %s\n", humanize.Comma(int64(report.Total)))
	fmt.Printf("  Imported:   %s\n", humanize.Comma(int64(report.Success)))
	fmt.Printf("  Duplicates: %s\n", humanize.Comma(int64(report.Duplicates)))
	fmt.Printf("  Failed:     %s\n", humanize.Comma(int64(report.Failed)))

	if len(report.Errors) > 0 {
		shown := len(report.Errors)
		if importMaxErrors > 0 && shown > importMaxErrors {
			shown = importMaxErrors
		}
		fmt.Println("\nRow errors:")
		for _, msg := range report.Errors[:shown] {
			fmt.Printf("  - %s\n", msg)
		}
		if shown < len(report.Errors) {
			fmt.Printf("  ... and %d more\n", len(report.Errors)-shown)
		}
	}

	if report.Success > 0 {
		gn.Info(`Next steps:
	 - Run '<em>morphdb search</em>' to query the catalog
	 - Run '<em>morphdb stats</em>' for aggregate counts
`)
	}

	return nil
}
