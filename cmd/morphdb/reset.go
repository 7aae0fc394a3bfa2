package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/morphdb/morphdb/internal/iodb"
	"github.com/morphdb/morphdb/internal/iostore"
	"github.com/spf13/cobra"
)

var (
	resetConfirm bool
	resetForce   bool
)

func getResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Deletes every record from the catalog",
		Long: `Deletes every species, variety and search index entry from the
catalog. The schema itself is kept.

This is destructive and requires two confirmations: the --confirm
flag and an interactive yes/no prompt. Pass --force as well to skip
the prompt in scripted runs.

Examples:
  morphdb reset --confirm
  morphdb reset --confirm --force`,
		RunE: runReset,
	}

	cmd.Flags().BoolVar(&resetConfirm, "confirm", false,
		"required to acknowledge that all records will be deleted")
	cmd.Flags().BoolVar(&resetForce, "force", false,
		"skip the interactive prompt (still requires --confirm)")

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	if !resetConfirm {
		fmt.Println("reset deletes EVERY record from the catalog.")
		fmt.Println("Re-run with --confirm if that is what you want.")
		return nil
	}

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

	if stats.TotalSpecies == 0 {
		fmt.Println("Catalog is already empty.")
		return nil
	}

	fmt.Printf("\n⚠️  Warning: this deletes %s species record(s) and all varieties.\n",
		humanize.Comma(int64(stats.TotalSpecies)))

	if !resetForce {
		fmt.Print("\nDo you want to continue? (yes/no): ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read user input: %w", err)
		}

		response = strings.TrimSpace(strings.ToLower(response))
		if response != "yes" && response != "y" {
			fmt.Println("Aborted. No changes made to the database.")
			return nil
		}
	}

	if err := st.ClearAll(ctx); err != nil {
		return err
	}

	fmt.Println("✓ All records deleted")
	return nil
}
