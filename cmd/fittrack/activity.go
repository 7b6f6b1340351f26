// ABOUTME: CLI commands for the activity log.
// ABOUTME: Appending activities, listing them, and showing known labels.
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
	activityDate     string
	activityDuration string
	activityHours    int
	activityMinutes  int
	activitySeconds  int
	activityDistance string
	activityCalories int
	activityLimit    int
)

var activityCmd = &cobra.Command{
	Use:     "activity",
	Aliases: []string{"act"},
	Short:   "Manage the activity log",
}

var activityAddCmd = &cobra.Command{
	Use:   "add <type> <label>",
	Short: "Log an activity",
	Long: `Append an activity to the log. The log is append-only: logging the same
activity twice records two sessions.

Calories passed with --calories are added to the date's active calories.
The day record is created if it does not exist yet.

TYPE is Cardio or Strength. LABEL is free text; run 'fittrack activity labels'
for the usual choices.

DURATION accepts H:MM:SS, MM:SS, or Go-style values like 45m or 1h30m.

Examples:
  fittrack activity add Cardio "🏃🏽‍♂️ Running" -d 30m --calories 300
  fittrack activity add Cardio "🚵🏽‍♀️ Biking" -d 1:23:45 --distance 14.2
  fittrack activity add Strength Legs -d 45m --date 01/15/2024`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidActivityType(args[0]) {
			return fmt.Errorf("unknown activity type: %s (use Cardio or Strength)", args[0])
		}
		activityType := models.ActivityType(args[0])
		label := args[1]

		a := models.NewActivity(activityType, label)

		if activityDate != "" {
			date, err := models.ParseDate(activityDate)
			if err != nil {
				return err
			}
			a.WithDate(date)
		}
		if activityDuration != "" {
			h, m, s, err := parseDuration(activityDuration)
			if err != nil {
				return err
			}
			a.WithDuration(h, m, s)
		} else if activityHours > 0 || activityMinutes > 0 || activitySeconds > 0 {
			a.WithDuration(activityHours, activityMinutes, activitySeconds)
		}
		if activityDistance != "" {
			mi, err := decimal.NewFromString(activityDistance)
			if err != nil {
				return fmt.Errorf("invalid distance: %s", activityDistance)
			}
			a.WithDistance(mi)
		}
		if cmd.Flags().Changed("calories") {
			a.WithCalories(activityCalories)
		}

		day := reconcile.AppendActivity(dataStore, a)
		if err := saveStore(); err != nil {
			return err
		}

		color.Green("✓ Logged %s", label)
		faint := color.New(color.Faint)
		fmt.Printf("  %s %s %s\n",
			faint.Sprint(a.ID.String()[:8]),
			models.FormatDate(a.Date),
			formatDuration(a.DurationSeconds))
		if day != nil && day.ActiveCalories != nil {
			fmt.Printf("  active calories for the day: %d kCal\n", *day.ActiveCalories)
		}
		return nil
	},
}

var activityListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List logged activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		activities := dataStore.Activities
		if len(activities) == 0 {
			fmt.Println("No activities logged.")
			return nil
		}

		start := 0
		if activityLimit > 0 && len(activities) > activityLimit {
			start = len(activities) - activityLimit
		}

		faint := color.New(color.Faint)
		for i := len(activities) - 1; i >= start; i-- {
			a := activities[i]
			extra := ""
			if a.DistanceMi != nil {
				extra += fmt.Sprintf(" %s mi", a.DistanceMi.String())
			}
			if a.Calories != nil {
				extra += fmt.Sprintf(" %d kCal", *a.Calories)
			}
			fmt.Printf("%s %s %-8s %s %s%s\n",
				faint.Sprint(a.ID.String()[:8]),
				faint.Sprint(models.FormatDate(a.Date)),
				string(a.Type),
				a.Label,
				formatDuration(a.DurationSeconds),
				faint.Sprint(extra))
		}
		return nil
	},
}

var activityLabelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Show the usual activity labels",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Cardio:")
		for _, l := range models.CardioLabels[1:] {
			fmt.Printf("  %s\n", l)
		}
		fmt.Println("Strength:")
		for _, l := range models.StrengthLabels[1:] {
			fmt.Printf("  %s\n", l)
		}
		return nil
	},
}

// parseDuration accepts H:MM:SS, MM:SS, or Go duration syntax (45m, 1h30m).
func parseDuration(s string) (hours, minutes, seconds int, err error) {
	var h, m, sec int
	if n, _ := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); n == 3 {
		return h, m, sec, nil
	}
	if n, _ := fmt.Sscanf(s, "%d:%d", &m, &sec); n == 2 {
		return 0, m, sec, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid duration: %s (use H:MM:SS or 45m)", s)
	}
	total := int(d.Seconds())
	return total / 3600, (total % 3600) / 60, total % 60, nil
}

func formatDuration(total *int) string {
	h, m, s := models.SplitDuration(total)
	if h == 0 && m == 0 && s == 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

func init() {
	activityAddCmd.Flags().StringVar(&activityDate, "date", "", "date of the session (default: today)")
	activityAddCmd.Flags().StringVarP(&activityDuration, "duration", "d", "", "duration (H:MM:SS or 45m)")
	activityAddCmd.Flags().IntVar(&activityHours, "hours", 0, "duration hours")
	activityAddCmd.Flags().IntVar(&activityMinutes, "minutes", 0, "duration minutes")
	activityAddCmd.Flags().IntVar(&activitySeconds, "seconds", 0, "duration seconds")
	activityAddCmd.Flags().StringVar(&activityDistance, "distance", "", "distance in miles")
	activityAddCmd.Flags().IntVar(&activityCalories, "calories", 0, "calories burned (kCal)")
	activityListCmd.Flags().IntVarP(&activityLimit, "limit", "n", 20, "max number of results")

	activityCmd.AddCommand(activityAddCmd)
	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityLabelsCmd)
	rootCmd.AddCommand(activityCmd)
}
