// ABOUTME: Read-only derived views over the store: deltas, means, rolling
// ABOUTME: averages, and activity summaries. Never mutates the store.
package stats

import (
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/shopspring/decimal"
)

// Field names a numeric DayRecord column for aggregation.
type Field string

const (
	FieldWeight         Field = "weight"
	FieldWaist          Field = "waist"
	FieldDailyCalories  Field = "daily_calories"
	FieldCarbs          Field = "carbs"
	FieldProtein        Field = "protein"
	FieldFat            Field = "fat"
	FieldActiveCalories Field = "active_calories"
)

// AllFields lists every aggregatable field.
var AllFields = []Field{
	FieldWeight, FieldWaist, FieldDailyCalories,
	FieldCarbs, FieldProtein, FieldFat, FieldActiveCalories,
}

// IsValidField checks if a string names an aggregatable field.
func IsValidField(s string) bool {
	for _, f := range AllFields {
		if string(f) == s {
			return true
		}
	}
	return false
}

// FieldUnits maps fields to their display units.
var FieldUnits = map[Field]string{
	FieldWeight:         "kg",
	FieldWaist:          "cm",
	FieldDailyCalories:  "kCal",
	FieldCarbs:          "g",
	FieldProtein:        "g",
	FieldFat:            "g",
	FieldActiveCalories: "kCal",
}

// fieldValue extracts a field from a record as a decimal, or nil when unset.
func fieldValue(d *models.DayRecord, f Field) *decimal.Decimal {
	fromInt := func(n *int) *decimal.Decimal {
		if n == nil {
			return nil
		}
		v := decimal.NewFromInt(int64(*n))
		return &v
	}

	switch f {
	case FieldWeight:
		return d.WeightKg
	case FieldWaist:
		return d.WaistCm
	case FieldDailyCalories:
		return fromInt(d.DailyCalories)
	case FieldCarbs:
		return fromInt(d.CarbsG)
	case FieldProtein:
		return fromInt(d.ProteinG)
	case FieldFat:
		return fromInt(d.FatG)
	case FieldActiveCalories:
		return fromInt(d.ActiveCalories)
	}
	return nil
}

// Point is one chronological observation; Value is nil where the field was
// not recorded that day.
type Point struct {
	Date  time.Time
	Value *decimal.Decimal
}

// Series extracts the chronological (date, value) sequence for a field.
func Series(s *store.Store, f Field) []Point {
	points := make([]Point, 0, len(s.Days))
	for _, d := range s.Days {
		points = append(points, Point{Date: d.Date, Value: fieldValue(d, f)})
	}
	return points
}

// LatestDelta returns the chronologically last non-null observation of a
// field and its delta against the one before it. Records where the field is
// null are skipped entirely. With fewer than two observations the delta is
// zero; ok is false when there are none.
func LatestDelta(s *store.Store, f Field) (latest, delta decimal.Decimal, ok bool) {
	var observed []decimal.Decimal
	for _, d := range s.Days {
		if v := fieldValue(d, f); v != nil {
			observed = append(observed, *v)
		}
	}
	if len(observed) == 0 {
		return decimal.Zero, decimal.Zero, false
	}
	latest = observed[len(observed)-1]
	if len(observed) > 1 {
		delta = latest.Sub(observed[len(observed)-2])
	}
	return latest, delta, true
}

// WindowedMean computes the mean of non-null field values with dates in
// [start, end] inclusive. ok is false when the window holds no observations;
// no division by zero, no NaN.
func WindowedMean(s *store.Store, f Field, start, end time.Time) (mean decimal.Decimal, ok bool) {
	start, end = models.DateOf(start), models.DateOf(end)
	sum := decimal.Zero
	count := 0
	for _, d := range s.Days {
		if d.Date.Before(start) || d.Date.After(end) {
			continue
		}
		if v := fieldValue(d, f); v != nil {
			sum = sum.Add(*v)
			count++
		}
	}
	if count == 0 {
		return decimal.Zero, false
	}
	return sum.Div(decimal.NewFromInt(int64(count))), true
}

// RollingMean computes a trailing moving average over a chronologically
// sorted series. The output has one entry per input position: the mean of up
// to the last window non-null values ending there, with a minimum period of
// one. Positions before any observation yield nil.
func RollingMean(series []Point, window int) []*decimal.Decimal {
	if window < 1 {
		window = 1
	}

	out := make([]*decimal.Decimal, len(series))
	var tail []decimal.Decimal
	for i, p := range series {
		if p.Value != nil {
			tail = append(tail, *p.Value)
			if len(tail) > window {
				tail = tail[1:]
			}
		}
		if len(tail) == 0 {
			continue
		}
		sum := decimal.Zero
		for _, v := range tail {
			sum = sum.Add(v)
		}
		mean := sum.Div(decimal.NewFromInt(int64(len(tail))))
		out[i] = &mean
	}
	return out
}
