// ABOUTME: Tests for legacy wide-table import.
// ABOUTME: Covers row expansion, minute conversion, and sentinel handling.
package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/fittrack/internal/models"
)

func writeLegacyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitness_data.csv")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIsLegacyHeader(t *testing.T) {
	if !IsLegacyHeader([]string{"Date", "Cardio Activity"}) {
		t.Error("header with Cardio Activity is legacy")
	}
	if IsLegacyHeader(dayColumns) {
		t.Error("current days header is not legacy")
	}
}

func TestReadLegacyTableMinutes(t *testing.T) {
	path := writeLegacyFile(t,
		"Date,Weight (kg),Waist (cm),Daily Calories (kCal),Carbs (g),Protein (g),Fat (g),Cardio Activity,Cardio Duration (min),Cardio Calories (kCal),Strength Activity,Strength Duration (min)\n"+
			"01/05/2024,90.5,88,2100,250,120,70,🏃🏽‍♂️ Running,30,300,Legs,45\n"+
			"01/06/2024,90.2,,,,,,None,0,0,None,0\n")

	days, activities, summary, err := ReadLegacyTable(path)
	if err != nil {
		t.Fatalf("ReadLegacyTable: %v", err)
	}

	if summary.Days != 2 {
		t.Errorf("Days = %d, want 2", summary.Days)
	}
	if len(days) != 2 {
		t.Fatalf("got %d days", len(days))
	}
	if days[0].WeightKg == nil || days[0].WeightKg.String() != "90.5" {
		t.Errorf("WeightKg = %v", days[0].WeightKg)
	}
	if days[0].ActiveCalories != nil {
		t.Error("legacy import must not pre-derive active calories")
	}

	if len(activities) != 2 {
		t.Fatalf("got %d activities, want 2 (unused slots on row two skipped)", len(activities))
	}
	cardio := activities[0]
	if cardio.Type != models.ActivityCardio || cardio.Label != "🏃🏽‍♂️ Running" {
		t.Errorf("cardio = %s %s", cardio.Type, cardio.Label)
	}
	if cardio.DurationSeconds == nil || *cardio.DurationSeconds != 1800 {
		t.Errorf("cardio duration = %v, want 1800 (minutes converted)", cardio.DurationSeconds)
	}
	if cardio.Calories == nil || *cardio.Calories != 300 {
		t.Errorf("cardio calories = %v, want 300", cardio.Calories)
	}
	strength := activities[1]
	if strength.Type != models.ActivityStrength || strength.Label != "Legs" {
		t.Errorf("strength = %s %s", strength.Type, strength.Label)
	}
	if strength.DurationSeconds == nil || *strength.DurationSeconds != 2700 {
		t.Errorf("strength duration = %v, want 2700", strength.DurationSeconds)
	}
}

func TestReadLegacyTableSeconds(t *testing.T) {
	path := writeLegacyFile(t,
		"Date,Weight (kg),Cardio Activity,Cardio Duration (s),Cardio Calories (kCal)\n"+
			"01/07/2024,89.9,🚶🏽‍♂️ Walking,2700,180\n")

	_, activities, _, err := ReadLegacyTable(path)
	if err != nil {
		t.Fatalf("ReadLegacyTable: %v", err)
	}
	if len(activities) != 1 {
		t.Fatalf("got %d activities, want 1", len(activities))
	}
	if activities[0].DurationSeconds == nil || *activities[0].DurationSeconds != 2700 {
		t.Errorf("duration = %v, want 2700 (seconds kept as-is)", activities[0].DurationSeconds)
	}
}

func TestReadLegacyTableSkipsEmptyActivitySlots(t *testing.T) {
	path := writeLegacyFile(t,
		"Date,Weight (kg),Cardio Activity,Cardio Duration (min),Strength Activity,Strength Duration (min)\n"+
			"01/08/2024,89.7,None,,None,\n")

	_, activities, _, err := ReadLegacyTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(activities) != 0 {
		t.Errorf("got %d activities, want 0 for sentinel-only row", len(activities))
	}
}
