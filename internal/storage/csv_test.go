// ABOUTME: Tests for the CSV backend.
// ABOUTME: Covers round trips, missing files, column back-fill, and errors.
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/shopspring/decimal"
)

func newTestCSVStore(t *testing.T) *CSVStore {
	t.Helper()
	s, err := NewCSVStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewCSVStore: %v", err)
	}
	return s
}

func TestReadDaysMissingFileIsNotFound(t *testing.T) {
	s := newTestCSVStore(t)

	_, err := s.ReadDays()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	_, err = s.ReadActivities()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for activities, got %v", err)
	}
}

func TestDaysRoundTrip(t *testing.T) {
	s := newTestCSVStore(t)

	weight := decimal.RequireFromString("82.5")
	cal := 2100
	d := models.NewDayRecord(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	d.WeightKg = &weight
	d.DailyCalories = &cal

	sparse := models.NewDayRecord(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	if err := s.WriteDays([]*models.DayRecord{d, sparse}); err != nil {
		t.Fatalf("WriteDays: %v", err)
	}

	got, err := s.ReadDays()
	if err != nil {
		t.Fatalf("ReadDays: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d days, want 2", len(got))
	}
	if !got[0].Date.Equal(d.Date) {
		t.Errorf("Date = %v, want %v", got[0].Date, d.Date)
	}
	if got[0].WeightKg == nil || !got[0].WeightKg.Equal(weight) {
		t.Errorf("WeightKg = %v, want 82.5", got[0].WeightKg)
	}
	if got[0].DailyCalories == nil || *got[0].DailyCalories != 2100 {
		t.Errorf("DailyCalories = %v, want 2100", got[0].DailyCalories)
	}
	if got[0].WaistCm != nil || got[0].ActiveCalories != nil {
		t.Error("unset fields should read back nil")
	}
	if got[1].WeightKg != nil || got[1].DailyCalories != nil {
		t.Error("sparse record should read back with nil fields")
	}
}

func TestActivitiesRoundTrip(t *testing.T) {
	s := newTestCSVStore(t)

	dist := decimal.RequireFromString("3.1")
	a := models.NewActivity(models.ActivityCardio, "🏃🏽‍♂️ Running").
		WithDate(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)).
		WithDuration(0, 30, 0).
		WithDistance(dist).
		WithCalories(300)

	if err := s.WriteActivities([]*models.Activity{a}); err != nil {
		t.Fatalf("WriteActivities: %v", err)
	}

	got, err := s.ReadActivities()
	if err != nil {
		t.Fatalf("ReadActivities: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d activities, want 1", len(got))
	}
	if got[0].Type != models.ActivityCardio {
		t.Errorf("Type = %s", got[0].Type)
	}
	if got[0].Label != "🏃🏽‍♂️ Running" {
		t.Errorf("Label = %s", got[0].Label)
	}
	if got[0].DurationSeconds == nil || *got[0].DurationSeconds != 1800 {
		t.Errorf("DurationSeconds = %v, want 1800", got[0].DurationSeconds)
	}
	if got[0].DistanceMi == nil || !got[0].DistanceMi.Equal(dist) {
		t.Errorf("DistanceMi = %v, want 3.1", got[0].DistanceMi)
	}
	if got[0].Calories == nil || *got[0].Calories != 300 {
		t.Errorf("Calories = %v, want 300", got[0].Calories)
	}
}

func TestReadDaysBackfillsMissingColumns(t *testing.T) {
	dir := t.TempDir()
	s, err := NewCSVStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	// An older file without the Active Calories column.
	csvData := "Date,Weight (kg),Waist (cm)\n01/05/2024,90.1,88\n"
	if err := os.WriteFile(filepath.Join(dir, "days.csv"), []byte(csvData), 0600); err != nil {
		t.Fatal(err)
	}

	days, err := s.ReadDays()
	if err != nil {
		t.Fatalf("ReadDays: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	if days[0].WeightKg == nil || days[0].WeightKg.String() != "90.1" {
		t.Errorf("WeightKg = %v", days[0].WeightKg)
	}
	if days[0].ActiveCalories != nil || days[0].DailyCalories != nil {
		t.Error("columns absent from the header must back-fill as nil")
	}
}

func TestReadDaysAcceptsPandasArtifacts(t *testing.T) {
	dir := t.TempDir()
	s, err := NewCSVStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	// pandas wrote ISO dates, float-typed integers, and empty cells for NaN.
	csvData := "Date,Weight (kg),Waist (cm),Daily Calories (kCal),Carbs (g),Protein (g),Fat (g),Active Calories (kCal)\n" +
		"2024-01-05,90.1,,2100.0,,,,\n"
	if err := os.WriteFile(filepath.Join(dir, "days.csv"), []byte(csvData), 0600); err != nil {
		t.Fatal(err)
	}

	days, err := s.ReadDays()
	if err != nil {
		t.Fatalf("ReadDays: %v", err)
	}
	if days[0].DailyCalories == nil || *days[0].DailyCalories != 2100 {
		t.Errorf("DailyCalories = %v, want 2100", days[0].DailyCalories)
	}
	if days[0].WaistCm != nil {
		t.Error("empty cell should read back nil")
	}
}

func TestReadDaysMalformedDate(t *testing.T) {
	dir := t.TempDir()
	s, err := NewCSVStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	csvData := "Date,Weight (kg)\nyesterday,90.1\n"
	if err := os.WriteFile(filepath.Join(dir, "days.csv"), []byte(csvData), 0600); err != nil {
		t.Fatal(err)
	}

	_, err = s.ReadDays()
	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedInputError, got %v", err)
	}
	if malformed.Line != 2 {
		t.Errorf("Line = %d, want 2", malformed.Line)
	}
}

func TestReadDaysRejectsCorruptIntegerCell(t *testing.T) {
	dir := t.TempDir()
	s, err := NewCSVStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	// Corrupt integer cells must surface like corrupt decimal cells do.
	csvData := "Date,Weight (kg),Daily Calories (kCal)\n" +
		"01/04/2024,90.5,2100\n" +
		"01/05/2024,90.1,abc\n"
	if err := os.WriteFile(filepath.Join(dir, "days.csv"), []byte(csvData), 0600); err != nil {
		t.Fatal(err)
	}

	_, err = s.ReadDays()
	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedInputError, got %v", err)
	}
	if malformed.Line != 3 {
		t.Errorf("Line = %d, want 3", malformed.Line)
	}
}

func TestReadActivitiesRejectsCorruptCaloriesCell(t *testing.T) {
	dir := t.TempDir()
	s, err := NewCSVStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	csvData := "Date,Type,Activity,Duration (s),Calories (kCal)\n" +
		"01/05/2024,Cardio,🥾 Hiking,5400,lots\n"
	if err := os.WriteFile(filepath.Join(dir, "activities.csv"), []byte(csvData), 0600); err != nil {
		t.Fatal(err)
	}

	_, err = s.ReadActivities()
	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedInputError, got %v", err)
	}
	if malformed.Line != 2 {
		t.Errorf("Line = %d, want 2", malformed.Line)
	}
}

func TestReadActivitiesLegacyMinutes(t *testing.T) {
	dir := t.TempDir()
	s, err := NewCSVStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	csvData := "Date,Type,Activity,Duration (min),Calories (kCal)\n" +
		"01/05/2024,Cardio,🥾 Hiking,90,400\n"
	if err := os.WriteFile(filepath.Join(dir, "activities.csv"), []byte(csvData), 0600); err != nil {
		t.Fatal(err)
	}

	activities, err := s.ReadActivities()
	if err != nil {
		t.Fatalf("ReadActivities: %v", err)
	}
	if activities[0].DurationSeconds == nil || *activities[0].DurationSeconds != 5400 {
		t.Errorf("DurationSeconds = %v, want 5400", activities[0].DurationSeconds)
	}
}

func TestLegacyLabelRoundTrip(t *testing.T) {
	s := newTestCSVStore(t)

	// Free-text label from before the enumerated lists existed.
	a := models.NewActivity(models.ActivityCardio, "rowing machine")
	if err := s.WriteActivities([]*models.Activity{a}); err != nil {
		t.Fatal(err)
	}
	got, err := s.ReadActivities()
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Label != "rowing machine" {
		t.Errorf("Label = %q, want legacy label preserved", got[0].Label)
	}
}
