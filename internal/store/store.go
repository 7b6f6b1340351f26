// ABOUTME: In-memory canonical store of daily records and activities.
// ABOUTME: Loads from and saves to a storage backend, kept sorted by date.
package store

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
)

// Store holds both record tables in memory. It is the single source of truth
// while the process runs; the backend copy only catches up on Save. Both
// slices are kept sorted by date ascending.
type Store struct {
	Days       []*models.DayRecord
	Activities []*models.Activity
}

// Load reads both tables from a backend. A missing table is not an error and
// yields an empty collection; malformed rows propagate as
// *storage.MalformedInputError.
func Load(b storage.Backend) (*Store, error) {
	days, err := b.ReadDays()
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("load days: %w", err)
	}

	activities, err := b.ReadActivities()
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("load activities: %w", err)
	}

	s := &Store{Days: days, Activities: activities}
	s.SortByDate()
	return s, nil
}

// Save writes both tables to a backend, overwriting the destination
// entirely. On failure the in-memory store remains the source of truth and
// the external copy is stale until the next successful save.
func (s *Store) Save(b storage.Backend) error {
	if err := b.WriteDays(s.Days); err != nil {
		return fmt.Errorf("save days: %w", err)
	}
	if err := b.WriteActivities(s.Activities); err != nil {
		return fmt.Errorf("save activities: %w", err)
	}
	return nil
}

// FindDay returns the record for an exact date, or nil when absent.
// Linear scan; record counts stay in the low thousands.
func (s *Store) FindDay(date time.Time) *models.DayRecord {
	d := models.DateOf(date)
	for _, r := range s.Days {
		if r.Date.Equal(d) {
			return r
		}
	}
	return nil
}

// ActivitiesOn returns all activities logged for a date, in insertion order.
func (s *Store) ActivitiesOn(date time.Time) []*models.Activity {
	d := models.DateOf(date)
	var out []*models.Activity
	for _, a := range s.Activities {
		if a.Date.Equal(d) {
			out = append(out, a)
		}
	}
	return out
}

// MinDate returns the earliest day record date and true, or a zero time and
// false when the store holds no days.
func (s *Store) MinDate() (time.Time, bool) {
	if len(s.Days) == 0 {
		return time.Time{}, false
	}
	// Days are sorted ascending.
	return s.Days[0].Date, true
}

// SortByDate restores the ascending-date invariant on both tables. Activity
// order within a date is preserved (append order).
func (s *Store) SortByDate() {
	sort.SliceStable(s.Days, func(i, j int) bool {
		return s.Days[i].Date.Before(s.Days[j].Date)
	})
	sort.SliceStable(s.Activities, func(i, j int) bool {
		return s.Activities[i].Date.Before(s.Activities[j].Date)
	})
}
