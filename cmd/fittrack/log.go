// ABOUTME: CLI command for logging daily metrics.
// ABOUTME: Applies a partial patch to the selected date's record.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/reconcile"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	logWeight   string
	logWaist    string
	logCalories int
	logCarbs    int
	logProtein  int
	logFat      int
)

var logCmd = &cobra.Command{
	Use:     "log [date]",
	Aliases: []string{"record"},
	Short:   "Log daily metrics",
	Long: `Log daily metrics for a date (default: today).

Only the flags you pass change; everything already recorded for the date is
kept. Running the same command twice leaves the record unchanged.

Active calories are derived from logged activities and cannot be set here;
use 'fittrack activity add' with --calories instead.

Examples:
  fittrack log --weight 82.5
  fittrack log --weight 82.5 --waist 88
  fittrack log 01/15/2024 --calories 2100 --carbs 250 --protein 120 --fat 70`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := models.DateOf(time.Now())
		if len(args) == 1 {
			var err error
			date, err = models.ParseDate(args[0])
			if err != nil {
				return err
			}
		}

		var patch reconcile.DayPatch
		if logWeight != "" {
			w, err := decimal.NewFromString(logWeight)
			if err != nil {
				return fmt.Errorf("invalid weight: %s", logWeight)
			}
			patch.WeightKg = &w
		}
		if logWaist != "" {
			w, err := decimal.NewFromString(logWaist)
			if err != nil {
				return fmt.Errorf("invalid waist: %s", logWaist)
			}
			patch.WaistCm = &w
		}
		if cmd.Flags().Changed("calories") {
			patch.DailyCalories = &logCalories
		}
		if cmd.Flags().Changed("carbs") {
			patch.CarbsG = &logCarbs
		}
		if cmd.Flags().Changed("protein") {
			patch.ProteinG = &logProtein
		}
		if cmd.Flags().Changed("fat") {
			patch.FatG = &logFat
		}

		if patch.IsZero() {
			return fmt.Errorf("nothing to log: pass at least one of --weight, --waist, --calories, --carbs, --protein, --fat")
		}

		reconcile.UpsertDay(dataStore, date, patch)
		if err := saveStore(); err != nil {
			return err
		}

		color.Green("✓ Logged metrics for %s", models.FormatDate(date))
		return nil
	},
}

func init() {
	logCmd.Flags().StringVar(&logWeight, "weight", "", "body weight in kg")
	logCmd.Flags().StringVar(&logWaist, "waist", "", "waist circumference in cm")
	logCmd.Flags().IntVar(&logCalories, "calories", 0, "calories consumed (kCal)")
	logCmd.Flags().IntVar(&logCarbs, "carbs", 0, "carbohydrates (g)")
	logCmd.Flags().IntVar(&logProtein, "protein", 0, "protein (g)")
	logCmd.Flags().IntVar(&logFat, "fat", 0, "fat (g)")
	rootCmd.AddCommand(logCmd)
}
