// ABOUTME: Horizon labels mapping named lookback windows to date ranges.
// ABOUTME: "All Time" extends back to the earliest record in the store.
package stats

import (
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
)

// Horizon is a named lookback window ending at today.
type Horizon string

const (
	HorizonWeek      Horizon = "1 Week"
	HorizonTwoWeeks  Horizon = "2 Weeks"
	HorizonMonth     Horizon = "1 Month"
	HorizonQuarter   Horizon = "3 Months"
	HorizonHalfYear  Horizon = "6 Months"
	HorizonYear      Horizon = "1 Year"
	HorizonFiveYears Horizon = "5 Years"
	HorizonAllTime   Horizon = "All Time"
)

// Horizons lists every horizon in display order.
var Horizons = []Horizon{
	HorizonWeek, HorizonTwoWeeks, HorizonMonth, HorizonQuarter,
	HorizonHalfYear, HorizonYear, HorizonFiveYears, HorizonAllTime,
}

// horizonDays maps bounded horizons to their lookback in days.
var horizonDays = map[Horizon]int{
	HorizonWeek:      7,
	HorizonTwoWeeks:  14,
	HorizonMonth:     31,
	HorizonQuarter:   90,
	HorizonHalfYear:  180,
	HorizonYear:      365,
	HorizonFiveYears: 1825,
}

// ParseHorizon resolves a label to a Horizon.
func ParseHorizon(s string) (Horizon, error) {
	for _, h := range Horizons {
		if string(h) == s {
			return h, nil
		}
	}
	return "", fmt.Errorf("unknown horizon: %q", s)
}

// HorizonWindow maps a horizon to the concrete [start, end] date range ending
// at today. "All Time" starts at the earliest date in the store, or at today
// when the store is empty; it never fails.
func HorizonWindow(s *store.Store, today time.Time, h Horizon) (start, end time.Time) {
	end = models.DateOf(today)
	if h == HorizonAllTime {
		if min, ok := s.MinDate(); ok {
			return min, end
		}
		return end, end
	}

	days, ok := horizonDays[h]
	if !ok {
		days = horizonDays[HorizonQuarter]
	}
	return end.AddDate(0, 0, -days), end
}
