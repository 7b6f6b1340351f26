// ABOUTME: Reconciler applying edits to the store while keeping derived
// ABOUTME: fields consistent, including the active-calories accumulator.
package reconcile

import (
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/shopspring/decimal"
)

// DayPatch is a partial update for a DayRecord. Nil fields are left
// untouched; callers include only the fields they intend to change.
type DayPatch struct {
	WeightKg       *decimal.Decimal
	WaistCm        *decimal.Decimal
	DailyCalories  *int
	CarbsG         *int
	ProteinG       *int
	FatG           *int
	ActiveCalories *int
}

// IsZero reports whether the patch carries no fields.
func (p DayPatch) IsZero() bool {
	return p.WeightKg == nil && p.WaistCm == nil && p.DailyCalories == nil &&
		p.CarbsG == nil && p.ProteinG == nil && p.FatG == nil && p.ActiveCalories == nil
}

// UpsertDay merges a patch into the record for the given date. An existing
// record is patched in place; otherwise a new record is created carrying only
// the date and the supplied fields, and the store is re-sorted. Applying the
// same patch twice yields the same state.
func UpsertDay(s *store.Store, date time.Time, patch DayPatch) *models.DayRecord {
	d := s.FindDay(date)
	if d == nil {
		d = models.NewDayRecord(date)
		s.Days = append(s.Days, d)
		s.SortByDate()
	}

	if patch.WeightKg != nil {
		d.WeightKg = patch.WeightKg
	}
	if patch.WaistCm != nil {
		d.WaistCm = patch.WaistCm
	}
	if patch.DailyCalories != nil {
		d.DailyCalories = patch.DailyCalories
	}
	if patch.CarbsG != nil {
		d.CarbsG = patch.CarbsG
	}
	if patch.ProteinG != nil {
		d.ProteinG = patch.ProteinG
	}
	if patch.FatG != nil {
		d.FatG = patch.FatG
	}
	if patch.ActiveCalories != nil {
		d.ActiveCalories = patch.ActiveCalories
	}
	return d
}

// AppendActivity adds an activity to the log and folds its calories into the
// same-date day record's active-calories accumulator. The day record is
// created when absent, bearing only the accumulator. Activities are never
// deduplicated. Returns the day record touched, or nil when the activity
// carried no positive calories.
func AppendActivity(s *store.Store, a *models.Activity) *models.DayRecord {
	s.Activities = append(s.Activities, a)
	s.SortByDate()

	if a.Calories == nil || *a.Calories <= 0 {
		return nil
	}

	total := *a.Calories
	if d := s.FindDay(a.Date); d != nil && d.ActiveCalories != nil {
		total += *d.ActiveCalories
	}
	return UpsertDay(s, a.Date, DayPatch{ActiveCalories: &total})
}

// ReplaceDays swaps the entire days table for new rows, as used by bulk table
// edits. The caller is trusted: nothing is re-derived. A duplicate date
// rejects the whole replace with *storage.DuplicateDateError and leaves the
// store unchanged.
func ReplaceDays(s *store.Store, rows []*models.DayRecord) error {
	seen := make(map[time.Time]bool, len(rows))
	for _, r := range rows {
		d := models.DateOf(r.Date)
		if seen[d] {
			return &storage.DuplicateDateError{Date: d}
		}
		seen[d] = true
	}

	s.Days = rows
	s.SortByDate()
	return nil
}

// ReplaceActivities swaps the entire activities table for new rows.
// Duplicate dates are legal here; the log allows many entries per day.
func ReplaceActivities(s *store.Store, rows []*models.Activity) {
	s.Activities = rows
	s.SortByDate()
}
