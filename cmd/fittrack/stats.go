// ABOUTME: CLI command for dashboard-style statistics.
// ABOUTME: Latest values with deltas, horizon means, and activity totals.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/stats"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var statsHorizon string

var statsCmd = &cobra.Command{
	Use:   "stats [field]",
	Short: "Show statistics",
	Long: `Show the latest value, change since the previous reading, and the mean
over a lookback horizon.

With no field, shows a dashboard across all fields plus activity totals.

FIELDS:

  weight, waist, daily_calories, carbs, protein, fat, active_calories

HORIZONS:

  1 Week, 2 Weeks, 1 Month, 3 Months, 6 Months, 1 Year, 5 Years, All Time

Examples:
  fittrack stats
  fittrack stats weight
  fittrack stats weight --horizon "3 Months"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		horizon, err := stats.ParseHorizon(statsHorizon)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			if !stats.IsValidField(args[0]) {
				return fmt.Errorf("unknown field: %s", args[0])
			}
			printFieldStats(stats.Field(args[0]), horizon)
			return nil
		}

		for _, f := range stats.AllFields {
			printFieldStats(f, horizon)
		}

		fmt.Println()
		total := stats.TotalCardioSeconds(dataStore)
		fmt.Printf("total cardio time: %s\n", formatDuration(&total))

		carbs, protein, fat := stats.MacroAverages(dataStore)
		if carbs != nil || protein != nil || fat != nil {
			fmt.Printf("macro averages: %s/%s/%s g\n",
				optDecimalFixed(carbs), optDecimalFixed(protein), optDecimalFixed(fat))
		}

		printCounts("cardio", stats.ActivityCounts(dataStore, models.ActivityCardio))
		printCounts("strength", stats.ActivityCounts(dataStore, models.ActivityStrength))
		return nil
	},
}

func printFieldStats(f stats.Field, horizon stats.Horizon) {
	latest, delta, ok := stats.LatestDelta(dataStore, f)
	if !ok {
		return
	}

	unit := stats.FieldUnits[f]
	line := fmt.Sprintf("%-16s %s %s", string(f), latest.String(), unit)

	if !delta.IsZero() {
		arrow := color.RedString("▲ %s", delta.String())
		if delta.IsNegative() {
			arrow = color.GreenString("▼ %s", delta.Abs().String())
		}
		line += "  " + arrow
	}

	start, end := stats.HorizonWindow(dataStore, time.Now(), horizon)
	if mean, ok := stats.WindowedMean(dataStore, f, start, end); ok {
		line += color.New(color.Faint).Sprintf("  (mean %s over %s)", mean.StringFixed(1), string(horizon))
	}
	fmt.Println(line)
}

func printCounts(name string, counts []stats.LabelCount) {
	if len(counts) == 0 {
		return
	}
	fmt.Printf("%s sessions:\n", name)
	for _, c := range counts {
		fmt.Printf("  %3d  %s\n", c.Count, c.Label)
	}
}

func optDecimalFixed(v *decimal.Decimal) string {
	if v == nil {
		return "-"
	}
	return v.StringFixed(1)
}

func init() {
	statsCmd.Flags().StringVar(&statsHorizon, "horizon", string(stats.HorizonMonth), "lookback window")
	rootCmd.AddCommand(statsCmd)
}
