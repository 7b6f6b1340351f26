// ABOUTME: SQLite backend for fitness data storage.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists both tables in a single SQLite database. Writes keep
// the full-overwrite semantics of the flat-file backend: each save replaces
// the table contents wholesale.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// Compile-time check that SQLiteStore implements Backend.
var _ Backend = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: dbPath}

	if err := s.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// configurePragmas sets up SQLite for optimal performance.
func (s *SQLiteStore) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := s.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

// initSchema creates or updates the database schema.
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS days (
		date TEXT PRIMARY KEY,
		weight_kg TEXT,
		waist_cm TEXT,
		daily_calories INTEGER,
		carbs_g INTEGER,
		protein_g INTEGER,
		fat_g INTEGER,
		active_calories INTEGER
	);

	CREATE TABLE IF NOT EXISTS activities (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		type TEXT NOT NULL,
		activity TEXT NOT NULL,
		duration_s INTEGER,
		distance_mi TEXT,
		calories INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_activities_date ON activities(date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// ReadDays loads all day records ordered by date ascending.
func (s *SQLiteStore) ReadDays() ([]*models.DayRecord, error) {
	rows, err := s.db.Query(`
		SELECT date, weight_kg, waist_cm, daily_calories, carbs_g, protein_g, fat_g, active_calories
		FROM days
		ORDER BY date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	defer rows.Close()

	var days []*models.DayRecord
	for rows.Next() {
		var dateStr string
		var weight, waist sql.NullString
		var dailyCal, carbs, protein, fat, activeCal sql.NullInt64

		if err := rows.Scan(&dateStr, &weight, &waist, &dailyCal, &carbs, &protein, &fat, &activeCal); err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}

		date, err := models.ParseDate(dateStr)
		if err != nil {
			return nil, &MalformedInputError{Source: s.dbPath, Err: err}
		}
		d := models.NewDayRecord(date)
		if d.WeightKg, err = nullDecimal(weight); err != nil {
			return nil, &MalformedInputError{Source: s.dbPath, Err: err}
		}
		if d.WaistCm, err = nullDecimal(waist); err != nil {
			return nil, &MalformedInputError{Source: s.dbPath, Err: err}
		}
		d.DailyCalories = nullInt(dailyCal)
		d.CarbsG = nullInt(carbs)
		d.ProteinG = nullInt(protein)
		d.FatG = nullInt(fat)
		d.ActiveCalories = nullInt(activeCal)
		days = append(days, d)
	}
	return days, rows.Err()
}

// WriteDays replaces the days table contents.
func (s *SQLiteStore) WriteDays(days []*models.DayRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin write days: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM days`); err != nil {
		return fmt.Errorf("clear days: %w", err)
	}
	for _, d := range days {
		_, err := tx.Exec(`
			INSERT INTO days (date, weight_kg, waist_cm, daily_calories, carbs_g, protein_g, fat_g, active_calories)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			sortableDate(d.Date),
			decimalValue(d.WeightKg),
			decimalValue(d.WaistCm),
			intValue(d.DailyCalories),
			intValue(d.CarbsG),
			intValue(d.ProteinG),
			intValue(d.FatG),
			intValue(d.ActiveCalories),
		)
		if err != nil {
			return fmt.Errorf("write day %s: %w", models.FormatDate(d.Date), err)
		}
	}
	return tx.Commit()
}

// ReadActivities loads all activities ordered by date ascending.
func (s *SQLiteStore) ReadActivities() ([]*models.Activity, error) {
	rows, err := s.db.Query(`
		SELECT id, date, type, activity, duration_s, distance_mi, calories, created_at
		FROM activities
		ORDER BY date ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		var idStr, dateStr, typeStr, label, createdAt string
		var duration, calories sql.NullInt64
		var distance sql.NullString

		if err := rows.Scan(&idStr, &dateStr, &typeStr, &label, &duration, &distance, &calories, &createdAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}

		date, err := models.ParseDate(dateStr)
		if err != nil {
			return nil, &MalformedInputError{Source: s.dbPath, Err: err}
		}
		a := &models.Activity{
			Date:            date,
			Type:            models.ActivityType(typeStr),
			Label:           label,
			DurationSeconds: nullInt(duration),
			Calories:        nullInt(calories),
		}
		// A row with an unparseable id gets a fresh UUID instead of the
		// zero UUID, which would collide across rows on the next write.
		a.ID = parseOrNewUUID(idStr)
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if a.DistanceMi, err = nullDecimal(distance); err != nil {
			return nil, &MalformedInputError{Source: s.dbPath, Err: err}
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// WriteActivities replaces the activities table contents.
func (s *SQLiteStore) WriteActivities(activities []*models.Activity) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin write activities: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM activities`); err != nil {
		return fmt.Errorf("clear activities: %w", err)
	}
	for _, a := range activities {
		createdAt := a.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		_, err := tx.Exec(`
			INSERT INTO activities (id, date, type, activity, duration_s, distance_mi, calories, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			a.ID.String(),
			sortableDate(a.Date),
			string(a.Type),
			a.Label,
			intValue(a.DurationSeconds),
			decimalValue(a.DistanceMi),
			intValue(a.Calories),
			createdAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("write activity %s: %w", a.ID, err)
		}
	}
	return tx.Commit()
}

// sortableDate stores dates in ISO form so lexical ORDER BY sorts
// chronologically.
func sortableDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func nullDecimal(v sql.NullString) (*decimal.Decimal, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v.String)
	if err != nil {
		return nil, fmt.Errorf("parse decimal %q: %w", v.String, err)
	}
	return &d, nil
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func decimalValue(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func intValue(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
