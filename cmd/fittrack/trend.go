// ABOUTME: CLI command for rolling-mean trend output.
// ABOUTME: Prints per-date values with the trailing moving average.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/stats"
	"github.com/spf13/cobra"
)

var (
	trendHorizon string
	trendWindow  int
)

var trendCmd = &cobra.Command{
	Use:   "trend <field>",
	Short: "Show a field's rolling-mean trend",
	Long: `Show a field's values over a horizon together with a trailing rolling mean.

The rolling mean skips unrecorded days; a gap does not reset the average.

Examples:
  fittrack trend weight
  fittrack trend weight --horizon "3 Months" --window 14
  fittrack trend daily_calories --horizon "All Time"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !stats.IsValidField(args[0]) {
			return fmt.Errorf("unknown field: %s", args[0])
		}
		field := stats.Field(args[0])

		horizon, err := stats.ParseHorizon(trendHorizon)
		if err != nil {
			return err
		}
		if trendWindow < 1 {
			return fmt.Errorf("window must be at least 1")
		}

		start, end := stats.HorizonWindow(dataStore, time.Now(), horizon)

		var series []stats.Point
		for _, p := range stats.Series(dataStore, field) {
			if p.Date.Before(start) || p.Date.After(end) {
				continue
			}
			series = append(series, p)
		}
		if len(series) == 0 {
			fmt.Println("No data in this horizon.")
			return nil
		}

		means := stats.RollingMean(series, trendWindow)

		unit := stats.FieldUnits[field]
		faint := color.New(color.Faint)
		for i, p := range series {
			value := "-"
			if p.Value != nil {
				value = p.Value.String()
			}
			mean := ""
			if means[i] != nil {
				mean = faint.Sprintf("  ~%s", means[i].StringFixed(2))
			}
			fmt.Printf("%s  %8s %s%s\n",
				faint.Sprint(models.FormatDate(p.Date)), value, unit, mean)
		}
		return nil
	},
}

func init() {
	trendCmd.Flags().StringVar(&trendHorizon, "horizon", string(stats.HorizonMonth), "lookback window")
	trendCmd.Flags().IntVar(&trendWindow, "window", 7, "rolling window size in observations")
	rootCmd.AddCommand(trendCmd)
}
