// ABOUTME: Export and import functionality for fitness data.
// ABOUTME: Supports JSON and YAML export formats with a versioned envelope.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData is the full export envelope for fitness data.
type ExportData struct {
	Version    string            `json:"version" yaml:"version"`
	ExportedAt string            `json:"exported_at" yaml:"exported_at"`
	Tool       string            `json:"tool" yaml:"tool"`
	Days       []dayPayload      `json:"days" yaml:"days"`
	Activities []activityPayload `json:"activities" yaml:"activities"`
}

// buildExport assembles the export envelope from in-memory tables.
func buildExport(days []*models.DayRecord, activities []*models.Activity) *ExportData {
	e := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().Format(time.RFC3339),
		Tool:       "fittrack",
		Days:       make([]dayPayload, 0, len(days)),
		Activities: make([]activityPayload, 0, len(activities)),
	}
	for _, d := range days {
		e.Days = append(e.Days, dayPayload{
			Date:           models.FormatDate(d.Date),
			WeightKg:       decimalToString(d.WeightKg),
			WaistCm:        decimalToString(d.WaistCm),
			DailyCalories:  d.DailyCalories,
			CarbsG:         d.CarbsG,
			ProteinG:       d.ProteinG,
			FatG:           d.FatG,
			ActiveCalories: d.ActiveCalories,
		})
	}
	for _, a := range activities {
		e.Activities = append(e.Activities, activityPayload{
			ID:              a.ID.String(),
			Date:            models.FormatDate(a.Date),
			Type:            string(a.Type),
			Activity:        a.Label,
			DurationSeconds: a.DurationSeconds,
			DistanceMi:      decimalToString(a.DistanceMi),
			Calories:        a.Calories,
			CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		})
	}
	return e
}

// ExportJSON exports both tables as JSON.
func ExportJSON(days []*models.DayRecord, activities []*models.Activity) ([]byte, error) {
	return json.MarshalIndent(buildExport(days, activities), "", "  ")
}

// ExportYAML exports both tables as YAML.
func ExportYAML(days []*models.DayRecord, activities []*models.Activity) ([]byte, error) {
	return yaml.Marshal(buildExport(days, activities))
}

// ImportJSON parses an export file back into record collections.
func ImportJSON(data []byte) ([]*models.DayRecord, []*models.Activity, error) {
	var e ExportData
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, nil, fmt.Errorf("unmarshal JSON: %w", err)
	}

	var days []*models.DayRecord
	for _, p := range e.Days {
		date, err := models.ParseDate(p.Date)
		if err != nil {
			return nil, nil, &MalformedInputError{Source: "import", Err: err}
		}
		d := models.NewDayRecord(date)
		if d.WeightKg, err = decimalFromString(p.WeightKg); err != nil {
			return nil, nil, &MalformedInputError{Source: "import", Err: err}
		}
		if d.WaistCm, err = decimalFromString(p.WaistCm); err != nil {
			return nil, nil, &MalformedInputError{Source: "import", Err: err}
		}
		d.DailyCalories = p.DailyCalories
		d.CarbsG = p.CarbsG
		d.ProteinG = p.ProteinG
		d.FatG = p.FatG
		d.ActiveCalories = p.ActiveCalories
		days = append(days, d)
	}

	var activities []*models.Activity
	for _, p := range e.Activities {
		date, err := models.ParseDate(p.Date)
		if err != nil {
			return nil, nil, &MalformedInputError{Source: "import", Err: err}
		}
		a := &models.Activity{
			Date:            date,
			Type:            models.ActivityType(p.Type),
			Label:           p.Activity,
			DurationSeconds: p.DurationSeconds,
			Calories:        p.Calories,
		}
		a.ID = parseOrNewUUID(p.ID)
		a.CreatedAt, _ = time.Parse(time.RFC3339, p.CreatedAt)
		if a.DistanceMi, err = decimalFromString(p.DistanceMi); err != nil {
			return nil, nil, &MalformedInputError{Source: "import", Err: err}
		}
		activities = append(activities, a)
	}

	return days, activities, nil
}
