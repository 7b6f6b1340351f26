// ABOUTME: Activity model for logged exercise sessions.
// ABOUTME: Cardio and strength activities with label lists and duration codec.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ActivityType distinguishes cardio from strength sessions.
type ActivityType string

const (
	ActivityCardio   ActivityType = "Cardio"
	ActivityStrength ActivityType = "Strength"
)

// LabelNone is the unset sentinel carried by legacy rows.
const LabelNone = "None"

// CardioLabels are the cardio activity choices, LabelNone first.
var CardioLabels = []string{
	LabelNone,
	"🏃🏽‍♂️ Running", "🏃🏾 Trail Running", "🚵🏽‍♀️ Biking", "🏊🏽‍♂️ Swimming",
	"🥾 Hiking", "🚶🏽‍♂️ Walking", "🏕️ Backpacking",
}

// StrengthLabels are the strength activity choices, LabelNone first.
var StrengthLabels = []string{
	LabelNone, "Full Body", "Arms", "Legs", "Core", "Back",
}

// LabelsFor returns the label list for an activity type.
func LabelsFor(t ActivityType) []string {
	if t == ActivityStrength {
		return StrengthLabels
	}
	return CardioLabels
}

// IsKnownLabel checks whether a label is in the current enumeration for its
// type. Legacy free-text labels fail this check but still round-trip through
// storage untouched.
func IsKnownLabel(t ActivityType, label string) bool {
	for _, l := range LabelsFor(t) {
		if l == label {
			return true
		}
	}
	return false
}

// IsValidActivityType checks if a string is a valid activity type.
func IsValidActivityType(s string) bool {
	return ActivityType(s) == ActivityCardio || ActivityType(s) == ActivityStrength
}

// Activity represents a single logged exercise session. Multiple activities
// may share a date; the log is append-only.
type Activity struct {
	ID              uuid.UUID
	Date            time.Time
	Type            ActivityType
	Label           string
	DurationSeconds *int
	DistanceMi      *decimal.Decimal
	Calories        *int
	CreatedAt       time.Time
}

// NewActivity creates a new Activity with generated UUID, dated today.
func NewActivity(activityType ActivityType, label string) *Activity {
	now := time.Now()
	return &Activity{
		ID:        uuid.New(),
		Date:      DateOf(now),
		Type:      activityType,
		Label:     label,
		CreatedAt: now,
	}
}

// WithDate sets the calendar date of the session.
func (a *Activity) WithDate(t time.Time) *Activity {
	a.Date = DateOf(t)
	return a
}

// WithDuration sets the elapsed time from hours/minutes/seconds components.
func (a *Activity) WithDuration(hours, minutes, seconds int) *Activity {
	total := JoinDuration(hours, minutes, seconds)
	a.DurationSeconds = &total
	return a
}

// WithDistance sets the distance in miles.
func (a *Activity) WithDistance(mi decimal.Decimal) *Activity {
	a.DistanceMi = &mi
	return a
}

// WithCalories sets the calories burned.
func (a *Activity) WithCalories(kcal int) *Activity {
	a.Calories = &kcal
	return a
}

// JoinDuration folds hours/minutes/seconds into a total-seconds integer.
func JoinDuration(hours, minutes, seconds int) int {
	return hours*3600 + minutes*60 + seconds
}

// SplitDuration decomposes a total-seconds value into hours, minutes and
// seconds for form display. A nil total decomposes to all zeros.
func SplitDuration(total *int) (hours, minutes, seconds int) {
	if total == nil || *total <= 0 {
		return 0, 0, 0
	}
	t := *total
	return t / 3600, (t % 3600) / 60, t % 60
}
