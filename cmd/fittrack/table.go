// ABOUTME: CLI commands for bulk table editing.
// ABOUTME: Export a table to CSV, edit externally, then apply it back whole.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/reconcile"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
)

var tableOutput string

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Bulk edit tables as CSV",
	Long: `Export a whole table for editing in a spreadsheet, then apply it back.

Applying replaces the table wholesale. For the days table, duplicate dates
reject the whole apply and leave your data untouched. Applied values are
trusted verbatim; active calories are NOT re-derived from activities.

Examples:
  fittrack table export days -o days.csv
  fittrack table apply days days.csv
  fittrack table apply activities activities.csv`,
}

var tableExportCmd = &cobra.Command{
	Use:       "export <days|activities>",
	Short:     "Export a table to CSV",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"days", "activities"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := tableOutput
		if path == "" {
			path = args[0] + ".csv"
		}

		switch args[0] {
		case "days":
			if err := storage.WriteDaysFile(path, dataStore.Days); err != nil {
				return err
			}
		case "activities":
			if err := storage.WriteActivitiesFile(path, dataStore.Activities); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown table: %s (use days or activities)", args[0])
		}

		color.Green("✓ Exported %s to %s", args[0], path)
		return nil
	},
}

func init() {
	tableExportCmd.Flags().StringVarP(&tableOutput, "output", "o", "", "output file (default: <table>.csv)")

	tableCmd.AddCommand(tableExportCmd)
	tableCmd.AddCommand(tableApplyCmd)
	rootCmd.AddCommand(tableCmd)
}

var tableApplyCmd = &cobra.Command{
	Use:       "apply <days|activities> <file>",
	Short:     "Replace a table from an edited CSV",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"days", "activities"},
	RunE: func(cmd *cobra.Command, args []string) error {
		table, path := args[0], args[1]
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("cannot read %s: %w", path, err)
		}

		switch table {
		case "days":
			rows, err := storage.ReadDaysFile(path)
			if err != nil {
				return err
			}
			if err := reconcile.ReplaceDays(dataStore, rows); err != nil {
				return err
			}
			color.Green("✓ Replaced days table (%d rows)", len(rows))
		case "activities":
			rows, err := storage.ReadActivitiesFile(path)
			if err != nil {
				return err
			}
			reconcile.ReplaceActivities(dataStore, rows)
			color.Green("✓ Replaced activities table (%d rows)", len(rows))
		default:
			return fmt.Errorf("unknown table: %s (use days or activities)", table)
		}

		return saveStore()
	},
}
