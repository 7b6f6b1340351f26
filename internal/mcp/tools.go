// ABOUTME: MCP tool implementations for fitness tracking.
// ABOUTME: Provides day logging, activity logging, and trend queries.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/reconcile"
	"github.com/harperreed/fittrack/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"
)

func (s *Server) registerTools() {
	// log_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_day",
		Description: "Record daily metrics (weight, waist, calories, macros) for a date; only supplied fields change",
	}, s.handleLogDay)

	// log_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_activity",
		Description: "Append a cardio or strength activity; its calories fold into the day's active calories",
	}, s.handleLogActivity)

	// get_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_day",
		Description: "Get the day record and activities for a date",
	}, s.handleGetDay)

	// list_days
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_days",
		Description: "List recent day records, newest first",
	}, s.handleListDays)

	// get_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get the latest value, delta, and horizon mean for a field",
	}, s.handleGetStats)

	// get_trend
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_trend",
		Description: "Get the rolling mean series for a field over a horizon",
	}, s.handleGetTrend)
}

// Tool input/output types

// Active calories are deliberately absent here. They accumulate from
// logged activities via log_activity, never from direct writes.
type logDayInput struct {
	Date          string   `json:"date" jsonschema:"Date (MM/DD/YYYY or YYYY-MM-DD)"`
	WeightKg      *float64 `json:"weight_kg,omitempty" jsonschema:"Body weight in kg"`
	WaistCm       *float64 `json:"waist_cm,omitempty" jsonschema:"Waist circumference in cm"`
	DailyCalories *int     `json:"daily_calories,omitempty" jsonschema:"Calories consumed (kCal)"`
	CarbsG        *int     `json:"carbs_g,omitempty" jsonschema:"Carbohydrates (g)"`
	ProteinG      *int     `json:"protein_g,omitempty" jsonschema:"Protein (g)"`
	FatG          *int     `json:"fat_g,omitempty" jsonschema:"Fat (g)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type logActivityInput struct {
	Date       string   `json:"date" jsonschema:"Date (MM/DD/YYYY or YYYY-MM-DD)"`
	Type       string   `json:"type" jsonschema:"Activity type (Cardio or Strength)"`
	Activity   string   `json:"activity" jsonschema:"Activity label (e.g. 🏃🏽‍♂️ Running or Legs)"`
	Hours      int      `json:"hours,omitempty" jsonschema:"Duration hours"`
	Minutes    int      `json:"minutes,omitempty" jsonschema:"Duration minutes"`
	Seconds    int      `json:"seconds,omitempty" jsonschema:"Duration seconds"`
	DistanceMi *float64 `json:"distance_mi,omitempty" jsonschema:"Distance in miles"`
	Calories   *int     `json:"calories,omitempty" jsonschema:"Calories burned (kCal)"`
}

type activityOutput struct {
	ID             string `json:"id"`
	Message        string `json:"message"`
	ActiveCalories *int   `json:"active_calories,omitempty"`
}

type getDayInput struct {
	Date string `json:"date" jsonschema:"Date (MM/DD/YYYY or YYYY-MM-DD)"`
}

type listDaysInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type getStatsInput struct {
	Field   string `json:"field" jsonschema:"Field name (weight, waist, daily_calories, carbs, protein, fat, active_calories)"`
	Horizon string `json:"horizon,omitempty" jsonschema:"Lookback window (1 Week, 2 Weeks, 1 Month, 3 Months, 6 Months, 1 Year, 5 Years, All Time; default 1 Month)"`
}

type getTrendInput struct {
	Field   string `json:"field" jsonschema:"Field name (weight, waist, daily_calories, carbs, protein, fat, active_calories)"`
	Horizon string `json:"horizon,omitempty" jsonschema:"Lookback window (default 1 Month)"`
	Window  int    `json:"window,omitempty" jsonschema:"Rolling window size in observations (default 7)"`
}

// Tool handlers

func (s *Server) handleLogDay(ctx context.Context, req *mcp.CallToolRequest, input logDayInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := models.ParseDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	patch := reconcile.DayPatch{
		DailyCalories: input.DailyCalories,
		CarbsG:        input.CarbsG,
		ProteinG:      input.ProteinG,
		FatG:          input.FatG,
	}
	if input.WeightKg != nil {
		w := decimal.NewFromFloat(*input.WeightKg)
		patch.WeightKg = &w
	}
	if input.WaistCm != nil {
		w := decimal.NewFromFloat(*input.WaistCm)
		patch.WaistCm = &w
	}
	if patch.IsZero() {
		return nil, simpleOutput{}, fmt.Errorf("no fields supplied")
	}

	st, err := s.load()
	if err != nil {
		return nil, simpleOutput{}, err
	}
	reconcile.UpsertDay(st, date, patch)
	if err := st.Save(s.backend); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged metrics for %s", models.FormatDate(date)),
	}, nil
}

func (s *Server) handleLogActivity(ctx context.Context, req *mcp.CallToolRequest, input logActivityInput) (*mcp.CallToolResult, activityOutput, error) {
	date, err := models.ParseDate(input.Date)
	if err != nil {
		return nil, activityOutput{}, err
	}
	if !models.IsValidActivityType(input.Type) {
		return nil, activityOutput{}, fmt.Errorf("unknown activity type: %s", input.Type)
	}

	a := models.NewActivity(models.ActivityType(input.Type), input.Activity).WithDate(date)
	if input.Hours > 0 || input.Minutes > 0 || input.Seconds > 0 {
		a.WithDuration(input.Hours, input.Minutes, input.Seconds)
	}
	if input.DistanceMi != nil {
		a.WithDistance(decimal.NewFromFloat(*input.DistanceMi))
	}
	if input.Calories != nil {
		a.WithCalories(*input.Calories)
	}

	st, err := s.load()
	if err != nil {
		return nil, activityOutput{}, err
	}
	day := reconcile.AppendActivity(st, a)
	if err := st.Save(s.backend); err != nil {
		return nil, activityOutput{}, fmt.Errorf("failed to save: %w", err)
	}

	out := activityOutput{
		ID:      a.ID.String()[:8],
		Message: fmt.Sprintf("Logged %s on %s (ID: %s)", input.Activity, models.FormatDate(date), a.ID.String()[:8]),
	}
	if day != nil {
		out.ActiveCalories = day.ActiveCalories
	}
	return nil, out, nil
}

func (s *Server) handleGetDay(ctx context.Context, req *mcp.CallToolRequest, input getDayInput) (*mcp.CallToolResult, any, error) {
	date, err := models.ParseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	st, err := s.load()
	if err != nil {
		return nil, nil, err
	}

	result := map[string]any{
		"date":       models.FormatDate(date),
		"day":        st.FindDay(date),
		"activities": st.ActivitiesOn(date),
	}
	return nil, result, nil
}

func (s *Server) handleListDays(ctx context.Context, req *mcp.CallToolRequest, input listDaysInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	st, err := s.load()
	if err != nil {
		return nil, nil, err
	}
	if len(st.Days) == 0 {
		return nil, map[string]any{"message": "No days recorded."}, nil
	}

	// Newest first.
	var days []*models.DayRecord
	for i := len(st.Days) - 1; i >= 0 && len(days) < input.Limit; i-- {
		days = append(days, st.Days[i])
	}
	return nil, days, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input getStatsInput) (*mcp.CallToolResult, any, error) {
	if !stats.IsValidField(input.Field) {
		return nil, nil, fmt.Errorf("unknown field: %s", input.Field)
	}
	horizon, err := resolveHorizon(input.Horizon)
	if err != nil {
		return nil, nil, err
	}

	st, err := s.load()
	if err != nil {
		return nil, nil, err
	}

	field := stats.Field(input.Field)
	result := map[string]any{
		"field":   input.Field,
		"unit":    stats.FieldUnits[field],
		"horizon": string(horizon),
	}

	if latest, delta, ok := stats.LatestDelta(st, field); ok {
		result["latest"] = latest.String()
		result["delta"] = delta.String()
	} else {
		result["message"] = "No observations."
	}

	start, end := stats.HorizonWindow(st, time.Now(), horizon)
	if mean, ok := stats.WindowedMean(st, field, start, end); ok {
		result["mean"] = mean.String()
	}
	return nil, result, nil
}

func (s *Server) handleGetTrend(ctx context.Context, req *mcp.CallToolRequest, input getTrendInput) (*mcp.CallToolResult, any, error) {
	if !stats.IsValidField(input.Field) {
		return nil, nil, fmt.Errorf("unknown field: %s", input.Field)
	}
	horizon, err := resolveHorizon(input.Horizon)
	if err != nil {
		return nil, nil, err
	}
	if input.Window <= 0 {
		input.Window = 7
	}

	st, err := s.load()
	if err != nil {
		return nil, nil, err
	}

	field := stats.Field(input.Field)
	start, end := stats.HorizonWindow(st, time.Now(), horizon)

	series := stats.Series(st, field)
	var windowed []stats.Point
	for _, p := range series {
		if p.Date.Before(start) || p.Date.After(end) {
			continue
		}
		windowed = append(windowed, p)
	}
	means := stats.RollingMean(windowed, input.Window)

	points := make([]map[string]any, 0, len(windowed))
	for i, p := range windowed {
		point := map[string]any{"date": models.FormatDate(p.Date)}
		if p.Value != nil {
			point["value"] = p.Value.String()
		}
		if means[i] != nil {
			point["rolling_mean"] = means[i].String()
		}
		points = append(points, point)
	}

	return nil, map[string]any{
		"field":   input.Field,
		"unit":    stats.FieldUnits[field],
		"horizon": string(horizon),
		"window":  input.Window,
		"points":  points,
	}, nil
}

func resolveHorizon(s string) (stats.Horizon, error) {
	if s == "" {
		return stats.HorizonMonth, nil
	}
	return stats.ParseHorizon(s)
}
