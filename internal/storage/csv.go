// ABOUTME: CSV-backed storage for fitness data.
// ABOUTME: Two flat tables with header-driven column back-fill on load.
package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/shopspring/decimal"
)

// Column headers for the days table. Order is significant for legacy
// compatibility and must not change.
var dayColumns = []string{
	"Date", "Weight (kg)", "Waist (cm)", "Daily Calories (kCal)",
	"Carbs (g)", "Protein (g)", "Fat (g)", "Active Calories (kCal)",
}

// Column headers for the activities table.
var activityColumns = []string{
	"Date", "Type", "Activity", "Duration (s)", "Distance (mi)", "Calories (kCal)",
}

// CSVStore provides flat-file storage under a data directory.
// Days live in days.csv, activities in activities.csv.
type CSVStore struct {
	dataDir string
}

// Compile-time check that CSVStore implements Backend.
var _ Backend = (*CSVStore)(nil)

// NewCSVStore creates a CSV-backed store rooted at dataDir.
func NewCSVStore(dataDir string) (*CSVStore, error) {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &CSVStore{dataDir: dataDir}, nil
}

// Close releases resources. For CSVStore this is a no-op.
func (s *CSVStore) Close() error {
	return nil
}

// DaysPath returns the path of the days table.
func (s *CSVStore) DaysPath() string {
	return filepath.Join(s.dataDir, "days.csv")
}

// ActivitiesPath returns the path of the activities table.
func (s *CSVStore) ActivitiesPath() string {
	return filepath.Join(s.dataDir, "activities.csv")
}

// ReadDays loads the days table. A missing file yields ErrNotFound.
// Columns absent from the header are back-filled as nil values so older
// schema generations load cleanly.
func (s *CSVStore) ReadDays() ([]*models.DayRecord, error) {
	return ReadDaysFile(s.DaysPath())
}

// ReadDaysFile parses a days table from an arbitrary CSV file, as used by
// bulk table edits on exported copies.
func ReadDaysFile(path string) ([]*models.DayRecord, error) {
	rows, header, err := readTable(path)
	if err != nil {
		return nil, err
	}

	col := columnIndex(header)
	var days []*models.DayRecord
	for i, row := range rows {
		date, err := models.ParseDate(cell(row, col, "Date"))
		if err != nil {
			return nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		d := models.NewDayRecord(date)
		if d.WeightKg, err = parseOptDecimal(cell(row, col, "Weight (kg)")); err != nil {
			return nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		if d.WaistCm, err = parseOptDecimal(cell(row, col, "Waist (cm)")); err != nil {
			return nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		if d.DailyCalories, err = parseOptInt(cell(row, col, "Daily Calories (kCal)")); err != nil {
			return nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		if d.CarbsG, err = parseOptInt(cell(row, col, "Carbs (g)")); err != nil {
			return nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		if d.ProteinG, err = parseOptInt(cell(row, col, "Protein (g)")); err != nil {
			return nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		if d.FatG, err = parseOptInt(cell(row, col, "Fat (g)")); err != nil {
			return nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		if d.ActiveCalories, err = parseOptInt(cell(row, col, "Active Calories (kCal)")); err != nil {
			return nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		days = append(days, d)
	}
	return days, nil
}

// WriteDays overwrites the days table entirely.
func (s *CSVStore) WriteDays(days []*models.DayRecord) error {
	return WriteDaysFile(s.DaysPath(), days)
}

// WriteDaysFile writes a days table to an arbitrary CSV file.
func WriteDaysFile(path string, days []*models.DayRecord) error {
	records := [][]string{dayColumns}
	for _, d := range days {
		records = append(records, []string{
			models.FormatDate(d.Date),
			formatOptDecimal(d.WeightKg),
			formatOptDecimal(d.WaistCm),
			formatOptInt(d.DailyCalories),
			formatOptInt(d.CarbsG),
			formatOptInt(d.ProteinG),
			formatOptInt(d.FatG),
			formatOptInt(d.ActiveCalories),
		})
	}
	return writeTable(path, records)
}

// ReadActivities loads the activities table. A missing file yields
// ErrNotFound. A legacy "Duration (min)" header is detected and converted to
// seconds on the fly.
func (s *CSVStore) ReadActivities() ([]*models.Activity, error) {
	return ReadActivitiesFile(s.ActivitiesPath())
}

// ReadActivitiesFile parses an activities table from an arbitrary CSV file.
func ReadActivitiesFile(path string) ([]*models.Activity, error) {
	rows, header, err := readTable(path)
	if err != nil {
		return nil, err
	}

	col := columnIndex(header)
	_, legacyMinutes := col["Duration (min)"]

	var activities []*models.Activity
	for i, row := range rows {
		date, err := models.ParseDate(cell(row, col, "Date"))
		if err != nil {
			return nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}

		a := &models.Activity{
			ID:    uuid.New(),
			Date:  date,
			Type:  models.ActivityType(cell(row, col, "Type")),
			Label: cell(row, col, "Activity"),
		}
		if legacyMinutes {
			m, err := parseOptInt(cell(row, col, "Duration (min)"))
			if err != nil {
				return nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
			}
			if m != nil {
				secs := *m * 60
				a.DurationSeconds = &secs
			}
		} else {
			if a.DurationSeconds, err = parseOptInt(cell(row, col, "Duration (s)")); err != nil {
				return nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
			}
		}
		if a.DistanceMi, err = parseOptDecimal(cell(row, col, "Distance (mi)")); err != nil {
			return nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		if a.Calories, err = parseOptInt(cell(row, col, "Calories (kCal)")); err != nil {
			return nil, &MalformedInputError{Source: path, Line: i + 2, Err: err}
		}
		activities = append(activities, a)
	}
	return activities, nil
}

// WriteActivities overwrites the activities table entirely.
func (s *CSVStore) WriteActivities(activities []*models.Activity) error {
	return WriteActivitiesFile(s.ActivitiesPath(), activities)
}

// WriteActivitiesFile writes an activities table to an arbitrary CSV file.
func WriteActivitiesFile(path string, activities []*models.Activity) error {
	records := [][]string{activityColumns}
	for _, a := range activities {
		records = append(records, []string{
			models.FormatDate(a.Date),
			string(a.Type),
			a.Label,
			formatOptInt(a.DurationSeconds),
			formatOptDecimal(a.DistanceMi),
			formatOptInt(a.Calories),
		})
	}
	return writeTable(path, records)
}

// readTable reads a CSV file into rows plus its header.
func readTable(path string) (rows [][]string, header []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, &MalformedInputError{Source: path, Line: 0, Err: err}
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[1:], all[0], nil
}

// writeTable overwrites a CSV file with the given records. There is no
// atomic rename; a crash mid-write can leave the file truncated, and the
// in-memory store remains the source of truth until the next save.
func writeTable(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// columnIndex maps header names to positions.
func columnIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	return col
}

// cell returns the value of a named column, or "" when the column is absent
// from this file's schema generation.
func cell(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseOptDecimal parses an optional decimal cell. Empty and NaN cells
// (pandas wrote NaN for missing values) map to nil.
func parseOptDecimal(s string) (*decimal.Decimal, error) {
	if s == "" || s == "NaN" || s == "nan" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return &d, nil
}

// parseOptInt parses an optional integer cell. Older files stored integer
// columns as floats ("300.0"), so a float fallback is applied.
func parseOptInt(s string) (*int, error) {
	if s == "" || s == "NaN" || s == "nan" {
		return nil, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("parse integer %q: %w", s, err)
	}
	n := int(f)
	return &n, nil
}

func formatOptDecimal(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func formatOptInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
