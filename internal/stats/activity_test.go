// ABOUTME: Tests for activity-log summaries.
// ABOUTME: Covers cardio totals, label tallies, and calendar events.
package stats

import (
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
)

func activityStore() *store.Store {
	s := &store.Store{}
	s.Activities = append(s.Activities,
		models.NewActivity(models.ActivityCardio, "🏃🏽‍♂️ Running").
			WithDate(date(2024, 6, 1)).WithDuration(0, 30, 0),
		models.NewActivity(models.ActivityCardio, "🏃🏽‍♂️ Running").
			WithDate(date(2024, 6, 3)).WithDuration(0, 45, 0),
		models.NewActivity(models.ActivityCardio, "🚵🏽‍♀️ Biking").
			WithDate(date(2024, 6, 5)).WithDuration(1, 0, 0),
		models.NewActivity(models.ActivityStrength, "Legs").
			WithDate(date(2024, 6, 5)).WithDuration(0, 40, 0),
	)
	return s
}

func TestTotalCardioSeconds(t *testing.T) {
	s := activityStore()

	got := TotalCardioSeconds(s)
	if got != 1800+2700+3600 {
		t.Errorf("TotalCardioSeconds = %d, want 8100 (strength excluded)", got)
	}
}

func TestTotalCardioSecondsSkipsNilDurations(t *testing.T) {
	s := &store.Store{}
	s.Activities = append(s.Activities,
		models.NewActivity(models.ActivityCardio, "🥾 Hiking").WithDate(date(2024, 6, 1)))

	if got := TotalCardioSeconds(s); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestActivityCountsOrdering(t *testing.T) {
	s := activityStore()

	got := ActivityCounts(s, models.ActivityCardio)
	if len(got) != 2 {
		t.Fatalf("got %d labels, want 2", len(got))
	}
	if got[0].Label != "🏃🏽‍♂️ Running" || got[0].Count != 2 {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Label != "🚵🏽‍♀️ Biking" || got[1].Count != 1 {
		t.Errorf("second = %+v", got[1])
	}
}

func TestActivityCountsExcludesSentinel(t *testing.T) {
	s := &store.Store{}
	s.Activities = append(s.Activities,
		models.NewActivity(models.ActivityStrength, models.LabelNone).WithDate(date(2024, 6, 1)),
		models.NewActivity(models.ActivityStrength, "").WithDate(date(2024, 6, 2)))

	if got := ActivityCounts(s, models.ActivityStrength); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestMacroAverages(t *testing.T) {
	s := &store.Store{}
	d1 := models.NewDayRecord(date(2024, 6, 1))
	d1.CarbsG = intp(200)
	d1.ProteinG = intp(100)
	d2 := models.NewDayRecord(date(2024, 6, 2))
	d2.CarbsG = intp(300)
	s.Days = append(s.Days, d1, d2)

	carbs, protein, fat := MacroAverages(s)
	if carbs == nil || carbs.String() != "250" {
		t.Errorf("carbs = %v, want 250", carbs)
	}
	if protein == nil || protein.String() != "100" {
		t.Errorf("protein = %v, want 100", protein)
	}
	if fat != nil {
		t.Errorf("fat = %v, want nil with no observations", fat)
	}
}

func TestMonthEvents(t *testing.T) {
	s := activityStore()
	s.Activities = append(s.Activities,
		models.NewActivity(models.ActivityCardio, "🏊🏽‍♂️ Swimming").WithDate(date(2024, 7, 1)),
		models.NewActivity(models.ActivityStrength, models.LabelNone).WithDate(date(2024, 6, 9)))

	events := MonthEvents(s, 2024, time.June)
	if len(events[5]) != 2 {
		t.Errorf("day 5 events = %v, want two", events[5])
	}
	if len(events[1]) != 1 || events[1][0] != "🏃🏽‍♂️ Running" {
		t.Errorf("day 1 events = %v", events[1])
	}
	if _, ok := events[9]; ok {
		t.Error("sentinel rows must not produce events")
	}
	if _, ok := events[7]; ok {
		t.Error("other months must be excluded")
	}
}
