// ABOUTME: CLI command for showing one day's record and activities.
// ABOUTME: Defaults to today when no date is given.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show one day's record and activities",
	Long: `Show the day record and logged activities for a date (default: today).

Examples:
  fittrack show
  fittrack show 01/15/2024
  fittrack show 2024-01-15`,
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

		bold := color.New(color.Bold)
		bold.Println(models.FormatDate(date))

		d := dataStore.FindDay(date)
		if d == nil {
			fmt.Println("  no metrics recorded")
		} else {
			printOptDecimal("weight", d.WeightKg, "kg")
			printOptDecimal("waist", d.WaistCm, "cm")
			printOptInt("calories", d.DailyCalories, "kCal")
			printOptInt("carbs", d.CarbsG, "g")
			printOptInt("protein", d.ProteinG, "g")
			printOptInt("fat", d.FatG, "g")
			printOptInt("active calories", d.ActiveCalories, "kCal")
		}

		activities := dataStore.ActivitiesOn(date)
		if len(activities) == 0 {
			return nil
		}
		fmt.Println()
		bold.Println("Activities")
		for _, a := range activities {
			extra := ""
			if a.DistanceMi != nil {
				extra += fmt.Sprintf("  %s mi", a.DistanceMi.String())
			}
			if a.Calories != nil {
				extra += fmt.Sprintf("  %d kCal", *a.Calories)
			}
			fmt.Printf("  %-8s %s  %s%s\n", string(a.Type), a.Label, formatDuration(a.DurationSeconds), extra)
		}
		return nil
	},
}

func printOptDecimal(name string, v *decimal.Decimal, unit string) {
	if v == nil {
		return
	}
	fmt.Printf("  %-16s %s %s\n", name, v.String(), unit)
}

func printOptInt(name string, v *int, unit string) {
	if v == nil {
		return
	}
	fmt.Printf("  %-16s %d %s\n", name, *v, unit)
}

func init() {
	rootCmd.AddCommand(showCmd)
}
