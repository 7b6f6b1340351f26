// ABOUTME: Tests for Activity model, label lists, and duration codec.
// ABOUTME: Validates constructor, type checks, and h/m/s round trips.
package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewActivity(t *testing.T) {
	a := NewActivity(ActivityCardio, "🏃🏽‍♂️ Running")

	if a.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if a.Type != ActivityCardio {
		t.Errorf("Type = %s, want Cardio", a.Type)
	}
	if a.Label != "🏃🏽‍♂️ Running" {
		t.Errorf("Label = %s", a.Label)
	}
	if a.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if a.DurationSeconds != nil || a.Calories != nil || a.DistanceMi != nil {
		t.Error("expected optional fields nil")
	}
}

func TestActivityChaining(t *testing.T) {
	dist := decimal.RequireFromString("3.1")
	a := NewActivity(ActivityCardio, "🚶🏽‍♂️ Walking").
		WithDate(time.Date(2024, 3, 9, 18, 0, 0, 0, time.UTC)).
		WithDuration(0, 45, 0).
		WithDistance(dist).
		WithCalories(250)

	if a.Date != time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC) {
		t.Errorf("Date = %v", a.Date)
	}
	if a.DurationSeconds == nil || *a.DurationSeconds != 2700 {
		t.Errorf("DurationSeconds = %v, want 2700", a.DurationSeconds)
	}
	if a.Calories == nil || *a.Calories != 250 {
		t.Errorf("Calories = %v, want 250", a.Calories)
	}
	if a.DistanceMi == nil || !a.DistanceMi.Equal(dist) {
		t.Errorf("DistanceMi = %v, want 3.1", a.DistanceMi)
	}
}

func TestJoinSplitDuration(t *testing.T) {
	tests := []struct {
		h, m, s int
		total   int
	}{
		{1, 23, 45, 5025},
		{0, 0, 0, 0},
		{0, 45, 0, 2700},
		{2, 0, 1, 7201},
	}

	for _, tt := range tests {
		if got := JoinDuration(tt.h, tt.m, tt.s); got != tt.total {
			t.Errorf("JoinDuration(%d,%d,%d) = %d, want %d", tt.h, tt.m, tt.s, got, tt.total)
		}
		if tt.total == 0 {
			continue
		}
		h, m, s := SplitDuration(&tt.total)
		if h != tt.h || m != tt.m || s != tt.s {
			t.Errorf("SplitDuration(%d) = (%d,%d,%d), want (%d,%d,%d)",
				tt.total, h, m, s, tt.h, tt.m, tt.s)
		}
	}
}

func TestSplitDurationNil(t *testing.T) {
	h, m, s := SplitDuration(nil)
	if h != 0 || m != 0 || s != 0 {
		t.Errorf("SplitDuration(nil) = (%d,%d,%d), want zeros", h, m, s)
	}
}

func TestLabelLists(t *testing.T) {
	if CardioLabels[0] != LabelNone || StrengthLabels[0] != LabelNone {
		t.Error("label lists must start with the None sentinel")
	}
	if !IsKnownLabel(ActivityStrength, "Legs") {
		t.Error("Legs should be a known strength label")
	}
	if IsKnownLabel(ActivityCardio, "Jazzercise") {
		t.Error("legacy free-text labels are not in the enumeration")
	}
	if !IsValidActivityType("Cardio") || !IsValidActivityType("Strength") {
		t.Error("Cardio and Strength must be valid types")
	}
	if IsValidActivityType("Yoga") {
		t.Error("Yoga is not a valid activity type")
	}
}
