// ABOUTME: FormContext carries form session state as an explicit value.
// ABOUTME: Holds the selected date and field defaults loaded from the store.
package reconcile

import (
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
)

// FormContext models the edit form's transient state: the currently selected
// date and the defaults loaded for it. It is passed explicitly so the
// reconciler and aggregator stay pure functions of (store, context) rather
// than reading ambient session state.
type FormContext struct {
	SelectedDate time.Time
	Defaults     DayPatch

	// Duration components for the activity sub-form, decomposed from the
	// most recent same-date activity of each type.
	CardioHours, CardioMinutes, CardioSeconds       int
	StrengthHours, StrengthMinutes, StrengthSeconds int
}

// NewFormContext creates a context selected on the given date with defaults
// loaded from the store.
func NewFormContext(s *store.Store, date time.Time) *FormContext {
	fc := &FormContext{}
	fc.Reload(s, date)
	return fc
}

// Reload switches the selected date and repopulates every default from the
// store. Callers must invoke this whenever the selected date changes;
// defaults are never refreshed implicitly.
func (fc *FormContext) Reload(s *store.Store, date time.Time) {
	fc.SelectedDate = models.DateOf(date)
	fc.Defaults = DayPatch{}
	fc.CardioHours, fc.CardioMinutes, fc.CardioSeconds = 0, 0, 0
	fc.StrengthHours, fc.StrengthMinutes, fc.StrengthSeconds = 0, 0, 0

	if d := s.FindDay(fc.SelectedDate); d != nil {
		fc.Defaults = DayPatch{
			WeightKg:       d.WeightKg,
			WaistCm:        d.WaistCm,
			DailyCalories:  d.DailyCalories,
			CarbsG:         d.CarbsG,
			ProteinG:       d.ProteinG,
			FatG:           d.FatG,
			ActiveCalories: d.ActiveCalories,
		}
	}

	for _, a := range s.ActivitiesOn(fc.SelectedDate) {
		h, m, sec := models.SplitDuration(a.DurationSeconds)
		if a.Type == models.ActivityStrength {
			fc.StrengthHours, fc.StrengthMinutes, fc.StrengthSeconds = h, m, sec
		} else {
			fc.CardioHours, fc.CardioMinutes, fc.CardioSeconds = h, m, sec
		}
	}
}
