// ABOUTME: Tests for DayRecord and the date codec.
// ABOUTME: Validates parsing layouts, formatting, and date normalization.
package models

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"legacy slash format", "01/15/2024"},
		{"iso date", "2024-01-15"},
		{"rfc3339", "2024-01-15T07:30:00Z"},
		{"datetime", "2024-01-15 07:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.input, err)
			}
			if !got.Equal(want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, want)
			}
		})
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	d := time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC)
	got, err := ParseDate(FormatDate(d))
	if err != nil {
		t.Fatalf("round trip error: %v", err)
	}
	if !got.Equal(d) {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}

func TestDateOfStripsTime(t *testing.T) {
	ts := time.Date(2024, 6, 15, 23, 59, 58, 0, time.UTC)
	got := DateOf(ts)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("DateOf left a time component: %v", got)
	}
	if !SameDate(ts, got) {
		t.Error("SameDate should hold between a timestamp and its date")
	}
}

func TestNewDayRecordAllFieldsNil(t *testing.T) {
	r := NewDayRecord(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	if r.Date != time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("Date = %v, want midnight UTC", r.Date)
	}
	if r.WeightKg != nil || r.WaistCm != nil || r.DailyCalories != nil ||
		r.CarbsG != nil || r.ProteinG != nil || r.FatG != nil || r.ActiveCalories != nil {
		t.Error("expected all measurement fields nil on a fresh record")
	}
}
