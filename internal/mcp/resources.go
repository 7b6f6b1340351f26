// ABOUTME: MCP resource implementations for fitness data.
// ABOUTME: Provides fittrack://today, fittrack://summary, and fittrack://calendar.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fittrack://today - Today's day record and activities
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://today",
		Name:        "Today's Fitness Data",
		Description: "Today's day record and activity log entries",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// fittrack://summary - Dashboard with latest values, deltas, and totals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://summary",
		Name:        "Fitness Summary Dashboard",
		Description: "Latest value and delta per field, macro averages, and activity totals",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// fittrack://calendar - Current month's activity calendar
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://calendar",
		Name:        "Activity Calendar",
		Description: "Activity labels per day for the current month",
		MIMEType:    "application/json",
	}, s.handleCalendarResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	st, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	today := models.DateOf(time.Now())
	result := map[string]any{
		"date":       models.FormatDate(today),
		"day":        st.FindDay(today),
		"activities": st.ActivitiesOn(today),
	}

	return resourceResult("fittrack://today", result)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	st, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	fields := make(map[string]any)
	for _, f := range stats.AllFields {
		latest, delta, ok := stats.LatestDelta(st, f)
		if !ok {
			continue
		}
		fields[string(f)] = map[string]any{
			"latest": latest.String(),
			"delta":  delta.String(),
			"unit":   stats.FieldUnits[f],
		}
	}

	carbs, protein, fat := stats.MacroAverages(st)
	macros := make(map[string]any)
	if carbs != nil {
		macros["carbs_g"] = carbs.StringFixed(1)
	}
	if protein != nil {
		macros["protein_g"] = protein.StringFixed(1)
	}
	if fat != nil {
		macros["fat_g"] = fat.StringFixed(1)
	}

	result := map[string]any{
		"generated_at":         time.Now().Format(time.RFC3339),
		"fields":               fields,
		"macro_averages":       macros,
		"total_cardio_seconds": stats.TotalCardioSeconds(st),
		"cardio_counts":        stats.ActivityCounts(st, models.ActivityCardio),
		"strength_counts":      stats.ActivityCounts(st, models.ActivityStrength),
		"summary": map[string]int{
			"days":       len(st.Days),
			"activities": len(st.Activities),
		},
	}

	return resourceResult("fittrack://summary", result)
}

func (s *Server) handleCalendarResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	st, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	now := time.Now()
	result := map[string]any{
		"year":   now.Year(),
		"month":  now.Month().String(),
		"events": stats.MonthEvents(st, now.Year(), now.Month()),
	}

	return resourceResult("fittrack://calendar", result)
}

func resourceResult(uri string, result any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
