// ABOUTME: Activity-log summaries: total cardio time, label frequencies,
// ABOUTME: macro averages, and per-month event markers for the calendar.
package stats

import (
	"sort"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/shopspring/decimal"
)

// TotalCardioSeconds sums the duration of every cardio activity.
func TotalCardioSeconds(s *store.Store) int {
	total := 0
	for _, a := range s.Activities {
		if a.Type == models.ActivityCardio && a.DurationSeconds != nil {
			total += *a.DurationSeconds
		}
	}
	return total
}

// MacroAverages returns the overall mean of carbs, protein, and fat across
// all day records. A macro with no observations comes back nil.
func MacroAverages(s *store.Store) (carbs, protein, fat *decimal.Decimal) {
	carbs, _ = meanOrNil(s, FieldCarbs)
	protein, _ = meanOrNil(s, FieldProtein)
	fat, _ = meanOrNil(s, FieldFat)
	return carbs, protein, fat
}

func meanOrNil(s *store.Store, f Field) (*decimal.Decimal, bool) {
	if len(s.Days) == 0 {
		return nil, false
	}
	first := s.Days[0].Date
	last := s.Days[len(s.Days)-1].Date
	m, ok := WindowedMean(s, f, first, last)
	if !ok {
		return nil, false
	}
	return &m, true
}

// LabelCount is one activity label with its occurrence count.
type LabelCount struct {
	Label string
	Count int
}

// ActivityCounts tallies activity frequency by label for one type, unset
// sentinel rows excluded, ordered by descending count then label.
func ActivityCounts(s *store.Store, t models.ActivityType) []LabelCount {
	counts := make(map[string]int)
	for _, a := range s.Activities {
		if a.Type != t || a.Label == "" || a.Label == models.LabelNone {
			continue
		}
		counts[a.Label]++
	}

	out := make([]LabelCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, LabelCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// MonthEvents maps day-of-month to the activity labels logged that day, for
// rendering a calendar month. Unset sentinel rows are skipped.
func MonthEvents(s *store.Store, year int, month time.Month) map[int][]string {
	events := make(map[int][]string)
	for _, a := range s.Activities {
		if a.Date.Year() != year || a.Date.Month() != month {
			continue
		}
		if a.Label == "" || a.Label == models.LabelNone {
			continue
		}
		day := a.Date.Day()
		events[day] = append(events[day], a.Label)
	}
	return events
}
