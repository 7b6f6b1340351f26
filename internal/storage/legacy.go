// ABOUTME: Legacy wide-table import for early fitness_data.csv files.
// ABOUTME: Expands single-table rows into day records plus activity entries.
package storage

import (
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
)

// LegacySummary holds counts of entities produced by a legacy import.
type LegacySummary struct {
	Days       int
	Activities int
}

// IsLegacyHeader reports whether a header belongs to the old wide
// single-table schema, which carried cardio and strength columns inline on
// the daily row.
func IsLegacyHeader(header []string) bool {
	for _, name := range header {
		if name == "Cardio Activity" || name == "Strength Activity" {
			return true
		}
	}
	return false
}

// ReadLegacyTable parses an old wide-format fitness_data.csv into the split
// schema. Each wide row yields one DayRecord plus up to two activities. The
// first schema generation stored durations in whole minutes; the second in
// seconds. Both are detected by header name.
//
// ActiveCalories is left nil on the returned days; the caller derives it by
// replaying the activities through the reconciler.
func ReadLegacyTable(path string) ([]*models.DayRecord, []*models.Activity, *LegacySummary, error) {
	rows, header, err := readTable(path)
	if err != nil {
		return nil, nil, nil, err
	}

	col := columnIndex(header)
	_, cardioMinutes := col["Cardio Duration (min)"]
	_, strengthMinutes := col["Strength Duration (min)"]

	var days []*models.DayRecord
	var activities []*models.Activity
	for i, row := range rows {
		date, err := models.ParseDate(cell(row, col, "Date"))
		if err != nil {
			return nil, nil, nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}

		d := models.NewDayRecord(date)
		if d.WeightKg, err = parseOptDecimal(cell(row, col, "Weight (kg)")); err != nil {
			return nil, nil, nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		if d.WaistCm, err = parseOptDecimal(cell(row, col, "Waist (cm)")); err != nil {
			return nil, nil, nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		if d.DailyCalories, err = parseOptInt(cell(row, col, "Daily Calories (kCal)")); err != nil {
			return nil, nil, nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		if d.CarbsG, err = parseOptInt(cell(row, col, "Carbs (g)")); err != nil {
			return nil, nil, nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		if d.ProteinG, err = parseOptInt(cell(row, col, "Protein (g)")); err != nil {
			return nil, nil, nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		if d.FatG, err = parseOptInt(cell(row, col, "Fat (g)")); err != nil {
			return nil, nil, nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		days = append(days, d)

		a, err := legacyActivity(row, col, date, models.ActivityCardio, cardioMinutes)
		if err != nil {
			return nil, nil, nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		if a != nil {
			activities = append(activities, a)
		}
		a, err = legacyActivity(row, col, date, models.ActivityStrength, strengthMinutes)
		if err != nil {
			return nil, nil, nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		if a != nil {
			activities = append(activities, a)
		}
	}

	summary := &LegacySummary{Days: len(days), Activities: len(activities)}
	return days, activities, summary, nil
}

// legacyActivity extracts one activity from a wide row, or nil when the row
// carries no data for that type.
func legacyActivity(row []string, col map[string]int, date time.Time, activityType models.ActivityType, minutes bool) (*models.Activity, error) {
	prefix := "Cardio"
	if activityType == models.ActivityStrength {
		prefix = "Strength"
	}

	label := cell(row, col, prefix+" Activity")
	var duration *int
	if minutes {
		m, err := parseOptInt(cell(row, col, prefix+" Duration (min)"))
		if err != nil {
			return nil, err
		}
		if m != nil {
			secs := *m * 60
			duration = &secs
		}
	} else {
		var err error
		if duration, err = parseOptInt(cell(row, col, prefix+" Duration (s)")); err != nil {
			return nil, err
		}
	}
	calories, err := parseOptInt(cell(row, col, prefix+" Calories (kCal)"))
	if err != nil {
		return nil, err
	}

	// Legacy rows carried every column; a None label with zero duration and
	// zero calories is an unused slot, not a session.
	noLabel := label == "" || label == models.LabelNone
	noDuration := duration == nil || *duration == 0
	noCalories := calories == nil || *calories == 0
	if noLabel && noDuration && noCalories {
		return nil, nil
	}
	if label == "" {
		label = models.LabelNone
	}

	return &models.Activity{
		ID:              uuid.New(),
		Date:            date,
		Type:            activityType,
		Label:           label,
		DurationSeconds: duration,
		Calories:        calories,
	}, nil
}
