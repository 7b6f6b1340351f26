// ABOUTME: CLI command for importing a legacy wide-format CSV.
// ABOUTME: Replays rows through the reconciler to rebuild derived fields.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/reconcile"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate <file>",
	Short: "Import a legacy fitness_data.csv",
	Long: `Import data from the legacy single-file format, where each row held the
day's metrics plus up to one cardio and one strength activity.

Rows are replayed through the normal logging path, so active calories are
rebuilt from activity calories rather than trusted from the old file.
Older files that stored durations in minutes are converted to seconds.

The import merges into existing data: metrics patch their dates and
activities append.

USAGE:

  fittrack migrate fitness_data.csv --dry-run   # Preview
  fittrack migrate fitness_data.csv             # Import`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, activities, summary, err := storage.ReadLegacyTable(args[0])
		if err != nil {
			return fmt.Errorf("failed to read legacy file: %w", err)
		}

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Printf("Would import %d days and %d activities.\n", summary.Days, len(activities))
			return nil
		}

		for _, d := range days {
			patch := reconcile.DayPatch{
				WeightKg:      d.WeightKg,
				WaistCm:       d.WaistCm,
				DailyCalories: d.DailyCalories,
				CarbsG:        d.CarbsG,
				ProteinG:      d.ProteinG,
				FatG:          d.FatG,
			}
			if patch.IsZero() {
				continue
			}
			reconcile.UpsertDay(dataStore, d.Date, patch)
		}
		for _, a := range activities {
			reconcile.AppendActivity(dataStore, a)
		}

		if err := saveStore(); err != nil {
			return err
		}

		color.Green("✓ Imported %d days and %d activities", summary.Days, len(activities))
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview import without making changes")
	rootCmd.AddCommand(migrateCmd)
}
