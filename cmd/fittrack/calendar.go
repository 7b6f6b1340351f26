// ABOUTME: CLI command rendering a month calendar of activities.
// ABOUTME: Marks days that have logged sessions with their labels.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/stats"
	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:     "calendar [YYYY-MM]",
	Aliases: []string{"cal"},
	Short:   "Show a month's activity calendar",
	Long: `Show a calendar for a month (default: current) with activity markers.

Days with logged activities are highlighted; the labels are listed below
the grid.

Examples:
  fittrack calendar
  fittrack calendar 2024-06`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		year, month := now.Year(), now.Month()
		if len(args) == 1 {
			parts := strings.SplitN(args[0], "-", 2)
			if len(parts) != 2 {
				return fmt.Errorf("invalid month: %s (use YYYY-MM)", args[0])
			}
			y, err := strconv.Atoi(parts[0])
			if err != nil {
				return fmt.Errorf("invalid year: %s", parts[0])
			}
			m, err := strconv.Atoi(parts[1])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", parts[1])
			}
			year, month = y, time.Month(m)
		}

		events := stats.MonthEvents(dataStore, year, month)

		bold := color.New(color.Bold)
		bold.Printf("%s %d\n", month, year)
		fmt.Println("Su Mo Tu We Th Fr Sa")

		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		daysInMonth := first.AddDate(0, 1, -1).Day()

		marked := color.New(color.FgGreen, color.Bold)
		pos := int(first.Weekday())
		fmt.Print(strings.Repeat("   ", pos))
		for day := 1; day <= daysInMonth; day++ {
			if _, ok := events[day]; ok {
				marked.Printf("%2d", day)
			} else {
				fmt.Printf("%2d", day)
			}
			pos++
			if pos%7 == 0 {
				fmt.Println()
			} else {
				fmt.Print(" ")
			}
		}
		if pos%7 != 0 {
			fmt.Println()
		}

		if len(events) == 0 {
			return nil
		}
		fmt.Println()
		for day := 1; day <= daysInMonth; day++ {
			if labels, ok := events[day]; ok {
				fmt.Printf("%2d: %s\n", day, strings.Join(labels, ", "))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}
