// ABOUTME: MCP resource implementations for the habit tracker.
// ABOUTME: Provides habits://list and habits://streaks resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/habits/internal/analytics"
	"github.com/harperreed/habits/internal/storage"
)

func (s *Server) registerResources() {
	// habits://list - all habits with their current state
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "habits://list",
		Name:        "Habit List",
		Description: "All habits with current progress and streaks",
		MIMEType:    "application/json",
	}, s.handleListResource)

	// habits://streaks - streak overview across habits
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "habits://streaks",
		Name:        "Streak Overview",
		Description: "Longest streak and break per habit",
		MIMEType:    "application/json",
	}, s.handleStreaksResource)
}

// Resource handlers

func (s *Server) handleListResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	habits, err := s.repo.ListHabits(0)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	list := make([]map[string]any, 0, len(habits))
	for _, h := range habits {
		status, err := s.habitStatus(h)
		if err != nil {
			return nil, err
		}
		list = append(list, map[string]any{
			"id":           h.ID,
			"name":         h.Name,
			"task":         h.Task,
			"period":       h.PeriodLabel(),
			"goal":         h.GoalLabel(),
			"period_range": status.Period,
			"progress":     status.Progress,
			"complete":     status.Complete,
			"streak":       status.Streak,
		})
	}

	result := map[string]any{
		"generated_at": time.Now().Format(time.RFC3339),
		"habits":       list,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "habits://list",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleStreaksResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	habits, err := s.repo.ListHabits(0)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	overview := make([]map[string]any, 0, len(habits))
	for _, h := range habits {
		periods, err := s.repo.Periods(storage.PeriodFilter{HabitID: h.ID}, true)
		if err != nil {
			return nil, err
		}
		runs := analytics.Runs(periods)

		entry := map[string]any{"habit": h.Name}
		if best, ok := analytics.MaxStreak(runs); ok {
			entry["max_streak"] = toRunOutput(best)
		}
		pastRuns := analytics.TrimLeadingBreaks(analytics.Runs(analytics.SkipCurrent(periods)))
		if worst, ok := analytics.MaxBreak(pastRuns); ok {
			entry["max_break"] = toRunOutput(worst)
		}
		overview = append(overview, entry)
	}

	result := map[string]any{
		"generated_at": time.Now().Format(time.RFC3339),
		"streaks":      overview,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "habits://streaks",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
