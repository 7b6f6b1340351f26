// ABOUTME: Charm Cloud KV backend for fitness data storage.
// ABOUTME: Stores each table as a JSON document with automatic device sync.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/charm"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/shopspring/decimal"
)

const (
	daysKey       = "table:days"
	activitiesKey = "table:activities"
)

// CharmStore persists both tables in Charm Cloud KV. Each table is one JSON
// document, which matches the last-writer-wins durability model of the flat
// file backend while giving free multi-device sync.
type CharmStore struct {
	client *charm.Client
}

// Compile-time check that CharmStore implements Backend.
var _ Backend = (*CharmStore)(nil)

// NewCharmStore initializes the Charm client and returns a KV-backed store.
func NewCharmStore() (*CharmStore, error) {
	c, err := charm.InitClient()
	if err != nil {
		return nil, fmt.Errorf("initialize charm client: %w", err)
	}
	return &CharmStore{client: c}, nil
}

// Close closes the underlying Charm KV connection.
func (s *CharmStore) Close() error {
	return s.client.Close()
}

// dayPayload is the KV serialization of a DayRecord. Decimals travel as
// strings to survive round trips exactly.
type dayPayload struct {
	Date           string  `json:"date" yaml:"date"`
	WeightKg       *string `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty"`
	WaistCm        *string `json:"waist_cm,omitempty" yaml:"waist_cm,omitempty"`
	DailyCalories  *int    `json:"daily_calories,omitempty" yaml:"daily_calories,omitempty"`
	CarbsG         *int    `json:"carbs_g,omitempty" yaml:"carbs_g,omitempty"`
	ProteinG       *int    `json:"protein_g,omitempty" yaml:"protein_g,omitempty"`
	FatG           *int    `json:"fat_g,omitempty" yaml:"fat_g,omitempty"`
	ActiveCalories *int    `json:"active_calories,omitempty" yaml:"active_calories,omitempty"`
}

// activityPayload is the KV serialization of an Activity.
type activityPayload struct {
	ID              string  `json:"id" yaml:"id"`
	Date            string  `json:"date" yaml:"date"`
	Type            string  `json:"type" yaml:"type"`
	Activity        string  `json:"activity" yaml:"activity"`
	DurationSeconds *int    `json:"duration_s,omitempty" yaml:"duration_s,omitempty"`
	DistanceMi      *string `json:"distance_mi,omitempty" yaml:"distance_mi,omitempty"`
	Calories        *int    `json:"calories,omitempty" yaml:"calories,omitempty"`
	CreatedAt       string  `json:"created_at" yaml:"created_at"`
}

// ReadDays loads the days table from KV. A never-written key yields
// ErrNotFound.
func (s *CharmStore) ReadDays() ([]*models.DayRecord, error) {
	data, found, err := s.client.Get(daysKey)
	if err != nil {
		return nil, fmt.Errorf("read days: %w", err)
	}
	if !found {
		return nil, ErrNotFound
	}

	var payloads []dayPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, &MalformedInputError{Source: daysKey, Err: err}
	}

	var days []*models.DayRecord
	for _, p := range payloads {
		date, err := models.ParseDate(p.Date)
		if err != nil {
			return nil, &MalformedInputError{Source: daysKey, Err: err}
		}
		d := models.NewDayRecord(date)
		if d.WeightKg, err = decimalFromString(p.WeightKg); err != nil {
			return nil, &MalformedInputError{Source: daysKey, Err: err}
		}
		if d.WaistCm, err = decimalFromString(p.WaistCm); err != nil {
			return nil, &MalformedInputError{Source: daysKey, Err: err}
		}
		d.DailyCalories = p.DailyCalories
		d.CarbsG = p.CarbsG
		d.ProteinG = p.ProteinG
		d.FatG = p.FatG
		d.ActiveCalories = p.ActiveCalories
		days = append(days, d)
	}
	return days, nil
}

// WriteDays overwrites the days table in KV and syncs.
func (s *CharmStore) WriteDays(days []*models.DayRecord) error {
	payloads := make([]dayPayload, 0, len(days))
	for _, d := range days {
		payloads = append(payloads, dayPayload{
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
	data, err := json.Marshal(payloads)
	if err != nil {
		return fmt.Errorf("marshal days: %w", err)
	}
	return s.client.Set(daysKey, data)
}

// ReadActivities loads the activities table from KV.
func (s *CharmStore) ReadActivities() ([]*models.Activity, error) {
	data, found, err := s.client.Get(activitiesKey)
	if err != nil {
		return nil, fmt.Errorf("read activities: %w", err)
	}
	if !found {
		return nil, ErrNotFound
	}

	var payloads []activityPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, &MalformedInputError{Source: activitiesKey, Err: err}
	}

	var activities []*models.Activity
	for _, p := range payloads {
		date, err := models.ParseDate(p.Date)
		if err != nil {
			return nil, &MalformedInputError{Source: activitiesKey, Err: err}
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
			return nil, &MalformedInputError{Source: activitiesKey, Err: err}
		}
		activities = append(activities, a)
	}
	return activities, nil
}

// WriteActivities overwrites the activities table in KV and syncs.
func (s *CharmStore) WriteActivities(activities []*models.Activity) error {
	payloads := make([]activityPayload, 0, len(activities))
	for _, a := range activities {
		payloads = append(payloads, activityPayload{
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
	data, err := json.Marshal(payloads)
	if err != nil {
		return fmt.Errorf("marshal activities: %w", err)
	}
	return s.client.Set(activitiesKey, data)
}

// parseOrNewUUID parses an ID, minting a fresh one for rows that predate IDs.
func parseOrNewUUID(s string) uuid.UUID {
	if id, err := uuid.Parse(s); err == nil {
		return id
	}
	return uuid.New()
}

func decimalFromString(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("parse decimal %q: %w", *s, err)
	}
	return &d, nil
}

func decimalToString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
