// ABOUTME: CLI command for listing day records.
// ABOUTME: Shows recent records newest first with recorded fields.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List day records",
	Long: `List recent day records, newest first.

Each line shows: DATE  WEIGHT  WAIST  CALORIES  CARBS/PROTEIN/FAT  ACTIVE

Unrecorded fields show as "-".

Examples:
  fittrack list          # Show last 20 days
  fittrack list -n 90    # Show last 90 days`,
	RunE: func(cmd *cobra.Command, args []string) error {
		days := dataStore.Days
		if len(days) == 0 {
			fmt.Println("No days recorded.")
			return nil
		}

		start := 0
		if listLimit > 0 && len(days) > listLimit {
			start = len(days) - listLimit
		}

		faint := color.New(color.Faint)
		for i := len(days) - 1; i >= start; i-- {
			d := days[i]
			fmt.Printf("%s  %7s kg  %6s cm  %6s kCal  %s/%s/%s g  %6s kCal\n",
				faint.Sprint(models.FormatDate(d.Date)),
				optDecimal(d.WeightKg),
				optDecimal(d.WaistCm),
				optInt(d.DailyCalories),
				optInt(d.CarbsG), optInt(d.ProteinG), optInt(d.FatG),
				optInt(d.ActiveCalories))
		}
		return nil
	},
}

func optDecimal(v *decimal.Decimal) string {
	if v == nil {
		return "-"
	}
	return v.String()
}

func optInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
}
