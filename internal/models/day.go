// ABOUTME: DayRecord model for daily body and nutrition measurements.
// ABOUTME: One record per calendar date; all measurement fields optional.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the encoding used when writing dates to storage.
const DateFormat = "01/02/2006"

// dateReadFormats are the layouts accepted when parsing stored dates.
// Older files used MM/DD/YYYY; exports and hand-edited files often use ISO.
var dateReadFormats = []string{
	DateFormat,
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// DayRecord holds all measurements for a single calendar date.
// Date is the unique key; every other field is optional. ActiveCalories is
// derived (sum of calories over the day's activities) and is maintained by
// the reconciler, never accepted verbatim from callers.
type DayRecord struct {
	Date           time.Time
	WeightKg       *decimal.Decimal
	WaistCm        *decimal.Decimal
	DailyCalories  *int
	CarbsG         *int
	ProteinG       *int
	FatG           *int
	ActiveCalories *int
}

// NewDayRecord creates an empty record for the given date.
func NewDayRecord(date time.Time) *DayRecord {
	return &DayRecord{Date: DateOf(date)}
}

// DateOf truncates a timestamp to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a stored date string, accepting any known layout.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateReadFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

// FormatDate encodes a date for storage as MM/DD/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// SameDate reports whether two timestamps fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
