// ABOUTME: Tests for the in-memory Store.
// ABOUTME: Covers load/save round trips, missing sources, and lookups.
package store

import (
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newBackend(t *testing.T) storage.Backend {
	t.Helper()
	b, err := storage.NewCSVStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestLoadMissingSourceYieldsEmptyStore(t *testing.T) {
	s, err := Load(newBackend(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Days) != 0 || len(s.Activities) != 0 {
		t.Error("expected empty collections for a missing source")
	}
	if _, ok := s.MinDate(); ok {
		t.Error("MinDate should report no dates on an empty store")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	b := newBackend(t)

	weight := decimal.RequireFromString("80.0")
	d := models.NewDayRecord(date(2024, 1, 2))
	d.WeightKg = &weight

	s := &Store{
		Days: []*models.DayRecord{d, models.NewDayRecord(date(2024, 1, 1))},
		Activities: []*models.Activity{
			models.NewActivity(models.ActivityCardio, "🚵🏽‍♀️ Biking").WithDate(date(2024, 1, 2)),
		},
	}
	s.SortByDate()

	if err := s.Save(b); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(b)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Days) != 2 || len(got.Activities) != 1 {
		t.Fatalf("got %d days, %d activities", len(got.Days), len(got.Activities))
	}
	if !got.Days[0].Date.Equal(date(2024, 1, 1)) {
		t.Error("days should load sorted ascending")
	}
	found := got.FindDay(date(2024, 1, 2))
	if found == nil || found.WeightKg == nil || !found.WeightKg.Equal(weight) {
		t.Errorf("FindDay(2024-01-02) = %+v", found)
	}
}

func TestFindDayAbsent(t *testing.T) {
	s := &Store{}
	if s.FindDay(date(2024, 5, 5)) != nil {
		t.Error("expected nil for absent date")
	}
}

func TestActivitiesOnFiltersByDate(t *testing.T) {
	s := &Store{
		Activities: []*models.Activity{
			models.NewActivity(models.ActivityCardio, "🥾 Hiking").WithDate(date(2024, 4, 1)),
			models.NewActivity(models.ActivityStrength, "Back").WithDate(date(2024, 4, 1)),
			models.NewActivity(models.ActivityCardio, "🏊🏽‍♂️ Swimming").WithDate(date(2024, 4, 2)),
		},
	}

	got := s.ActivitiesOn(date(2024, 4, 1))
	if len(got) != 2 {
		t.Fatalf("got %d activities, want 2", len(got))
	}
}

func TestSortByDateIsStable(t *testing.T) {
	first := models.NewActivity(models.ActivityCardio, "🥾 Hiking").WithDate(date(2024, 4, 1))
	second := models.NewActivity(models.ActivityStrength, "Back").WithDate(date(2024, 4, 1))
	s := &Store{Activities: []*models.Activity{first, second}}

	s.SortByDate()
	if s.Activities[0] != first || s.Activities[1] != second {
		t.Error("same-date activities must keep append order")
	}
}
