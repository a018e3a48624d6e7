// ABOUTME: MCP tool implementations for the habit tracker.
// ABOUTME: Habit CRUD, progress logging, sessions, and streak analytics.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/habits/internal/analytics"
	"github.com/harperreed/habits/internal/models"
	"github.com/harperreed/habits/internal/storage"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_habit",
		Description: "Create a new habit with a period, goal, and optional unit",
	}, s.handleAddHabit)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_habits",
		Description: "List habits with current progress and streaks, optionally filtered by period length",
	}, s.handleListHabits)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_habit",
		Description: "Delete a habit by id or name, including all progress",
	}, s.handleDeleteHabit)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_progress",
		Description: "Record progress for a habit, optionally backdated",
	}, s.handleAddProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_session",
		Description: "Start a timed session for a habit measured in minutes",
	}, s.handleStartSession)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "end_session",
		Description: "End a timed session and record the elapsed minutes",
	}, s.handleEndSession)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "habit_status",
		Description: "Get a habit's current period, progress, and streak",
	}, s.handleHabitStatus)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "past_streaks",
		Description: "List past streaks and breaks for a habit",
	}, s.handlePastStreaks)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "max_streak",
		Description: "Get the longest streak, optionally filtered by habit or period length",
	}, s.handleMaxStreak)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "max_break",
		Description: "Get the longest break, optionally filtered by habit or period length",
	}, s.handleMaxBreak)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "completion_rate",
		Description: "Get per-habit completion rates, optionally within a date window",
	}, s.handleCompletionRate)
}

// Tool input/output types

type addHabitInput struct {
	Name       string `json:"name" jsonschema:"description=Short unique name of the habit,required"`
	Task       string `json:"task" jsonschema:"description=Imperative task description,required"`
	PeriodDays int    `json:"period_days,omitempty" jsonschema:"description=Period length in days: 1 daily, 7 weekly, 30 monthly (default 1)"`
	Goal       int    `json:"goal,omitempty" jsonschema:"description=Required amount of progress per period (default 1)"`
	Unit       string `json:"unit,omitempty" jsonschema:"description=Unit of progress, e.g. minutes, pages; empty for check-off tasks"`
}

type habitOutput struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type listHabitsInput struct {
	PeriodDays int `json:"period_days,omitempty" jsonschema:"description=Filter by period length in days"`
}

type habitRef struct {
	Habit string `json:"habit" jsonschema:"description=Habit id or name,required"`
}

type addProgressInput struct {
	Habit  string `json:"habit" jsonschema:"description=Habit id or name,required"`
	Amount int    `json:"amount,omitempty" jsonschema:"description=Amount of progress (default 1)"`
	Date   string `json:"date,omitempty" jsonschema:"description=Date of past progress (YYYY-MM-DD), defaults to now"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type statusOutput struct {
	Habit    string `json:"habit"`
	Period   string `json:"period"`
	Progress int    `json:"progress"`
	Goal     int    `json:"goal"`
	Complete bool   `json:"complete"`
	Streak   int    `json:"streak"`
}

type runOutput struct {
	Kind   string `json:"kind"`
	Habit  string `json:"habit"`
	Length int    `json:"length"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type analyticsFilter struct {
	Habit      string `json:"habit,omitempty" jsonschema:"description=Filter by habit id or name"`
	PeriodDays int    `json:"period_days,omitempty" jsonschema:"description=Filter by period length in days"`
}

type completionRateInput struct {
	Start string `json:"start,omitempty" jsonschema:"description=Start of window (YYYY-MM-DD)"`
	End   string `json:"end,omitempty" jsonschema:"description=End of window (YYYY-MM-DD)"`
}

// Tool handlers

func (s *Server) handleAddHabit(ctx context.Context, req *mcp.CallToolRequest, input addHabitInput) (*mcp.CallToolResult, habitOutput, error) {
	h := models.NewHabit(input.Name, input.Task, input.PeriodDays, input.Goal, input.Unit)
	if err := s.repo.CreateHabit(h); err != nil {
		return nil, habitOutput{}, err
	}
	return nil, habitOutput{
		ID:      h.ID,
		Name:    h.Name,
		Message: fmt.Sprintf("Created habit %q (every %s, goal %s)", h.Name, h.PeriodLabel(), h.GoalLabel()),
	}, nil
}

func (s *Server) handleListHabits(ctx context.Context, req *mcp.CallToolRequest, input listHabitsInput) (*mcp.CallToolResult, any, error) {
	habits, err := s.repo.ListHabits(input.PeriodDays)
	if err != nil {
		return nil, nil, err
	}
	if len(habits) == 0 {
		return nil, map[string]any{"message": "No habits found."}, nil
	}

	result := make([]map[string]any, 0, len(habits))
	for _, h := range habits {
		status, err := s.habitStatus(h)
		if err != nil {
			return nil, nil, err
		}
		result = append(result, map[string]any{
			"id":       h.ID,
			"name":     h.Name,
			"task":     h.Task,
			"period":   h.PeriodLabel(),
			"goal":     h.GoalLabel(),
			"progress": status.Progress,
			"streak":   status.Streak,
		})
	}
	return nil, result, nil
}

func (s *Server) handleDeleteHabit(ctx context.Context, req *mcp.CallToolRequest, input habitRef) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteHabit(input.Habit); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted habit: %s", input.Habit)}, nil
}

func (s *Server) handleAddProgress(ctx context.Context, req *mcp.CallToolRequest, input addProgressInput) (*mcp.CallToolResult, simpleOutput, error) {
	h, err := s.repo.GetHabit(input.Habit)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	amount := input.Amount
	if amount <= 0 {
		amount = 1
	}
	p := models.NewProgress(h.ID, amount)
	if input.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
		if err != nil {
			return nil, simpleOutput{}, fmt.Errorf("invalid date: %s", input.Date)
		}
		p.WithRecordedAt(d)
	}
	if err := s.repo.AddProgress(p); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Added %d %s to %q", amount, orDefault(h.Unit, "progress"), h.Name),
	}, nil
}

func (s *Server) handleStartSession(ctx context.Context, req *mcp.CallToolRequest, input habitRef) (*mcp.CallToolResult, simpleOutput, error) {
	h, err := s.sessionHabit(input.Habit)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.repo.StartSession(h.ID); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Started counting minutes for %q", h.Name)}, nil
}

func (s *Server) handleEndSession(ctx context.Context, req *mcp.CallToolRequest, input habitRef) (*mcp.CallToolResult, simpleOutput, error) {
	h, err := s.sessionHabit(input.Habit)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	minutes, err := s.repo.EndSession(h.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Added %d minutes to %q", minutes, h.Name)}, nil
}

func (s *Server) handleHabitStatus(ctx context.Context, req *mcp.CallToolRequest, input habitRef) (*mcp.CallToolResult, statusOutput, error) {
	h, err := s.repo.GetHabit(input.Habit)
	if err != nil {
		return nil, statusOutput{}, err
	}
	status, err := s.habitStatus(h)
	if err != nil {
		return nil, statusOutput{}, err
	}
	return nil, status, nil
}

func (s *Server) handlePastStreaks(ctx context.Context, req *mcp.CallToolRequest, input habitRef) (*mcp.CallToolResult, any, error) {
	h, err := s.repo.GetHabit(input.Habit)
	if err != nil {
		return nil, nil, err
	}
	periods, err := s.repo.Periods(storage.PeriodFilter{HabitID: h.ID}, true)
	if err != nil {
		return nil, nil, err
	}
	runs := analytics.TrimLeadingBreaks(analytics.Runs(analytics.SkipCurrent(periods)))
	if len(runs) == 0 {
		return nil, map[string]any{"message": "No past streaks or breaks."}, nil
	}

	result := make([]runOutput, 0, len(runs))
	for _, r := range runs {
		result = append(result, toRunOutput(r))
	}
	return nil, result, nil
}

func (s *Server) handleMaxStreak(ctx context.Context, req *mcp.CallToolRequest, input analyticsFilter) (*mcp.CallToolResult, any, error) {
	periods, err := s.filteredPeriods(input)
	if err != nil {
		return nil, nil, err
	}
	best, ok := analytics.MaxStreak(analytics.Runs(periods))
	if !ok {
		return nil, map[string]any{"message": "No streaks yet."}, nil
	}
	return nil, toRunOutput(best), nil
}

func (s *Server) handleMaxBreak(ctx context.Context, req *mcp.CallToolRequest, input analyticsFilter) (*mcp.CallToolResult, any, error) {
	periods, err := s.filteredPeriods(input)
	if err != nil {
		return nil, nil, err
	}
	runs := analytics.TrimLeadingBreaks(analytics.Runs(analytics.SkipCurrent(periods)))
	worst, ok := analytics.MaxBreak(runs)
	if !ok {
		return nil, map[string]any{"message": "No breaks, keep it up."}, nil
	}
	return nil, toRunOutput(worst), nil
}

func (s *Server) handleCompletionRate(ctx context.Context, req *mcp.CallToolRequest, input completionRateInput) (*mcp.CallToolResult, any, error) {
	var filter storage.PeriodFilter
	if input.Start != "" {
		d, err := time.ParseInLocation("2006-01-02", input.Start, time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid start date: %s", input.Start)
		}
		filter.Start = d
	}
	if input.End != "" {
		d, err := time.ParseInLocation("2006-01-02", input.End, time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid end date: %s", input.End)
		}
		filter.End = d
	}

	periods, err := s.repo.Periods(filter, false)
	if err != nil {
		return nil, nil, err
	}
	tallies := analytics.CompletionRates(periods)
	if len(tallies) == 0 {
		return nil, map[string]any{"message": "No periods in this window."}, nil
	}

	result := make([]map[string]any, 0, len(tallies))
	for _, t := range tallies {
		result = append(result, map[string]any{
			"habit":     t.HabitName,
			"completed": t.Completed,
			"out_of":    t.Total,
			"rate":      t.Rate(),
		})
	}
	return nil, result, nil
}

// Helpers

func (s *Server) habitStatus(h *models.Habit) (statusOutput, error) {
	cursor, err := s.repo.PeriodsDesc(h)
	if err != nil {
		return statusOutput{}, err
	}
	defer func() { _ = cursor.Close() }()

	status := statusOutput{Habit: h.Name, Goal: h.Goal}
	current, ok, err := analytics.CurrentProgress(cursor)
	if err != nil {
		return statusOutput{}, err
	}
	if ok {
		status.Period = current.Label()
		status.Progress = current.Progress
		status.Complete = current.IsComplete()
	}

	streakCursor, err := s.repo.PeriodsDesc(h)
	if err != nil {
		return statusOutput{}, err
	}
	defer func() { _ = streakCursor.Close() }()
	run, err := analytics.CurrentStreak(streakCursor)
	if err != nil {
		return statusOutput{}, err
	}
	status.Streak = run.Length
	return status, nil
}

func (s *Server) sessionHabit(idOrName string) (*models.Habit, error) {
	h, err := s.repo.GetHabit(idOrName)
	if err != nil {
		return nil, err
	}
	if h.Unit != "minutes" {
		return nil, fmt.Errorf("sessions only work for habits measured in minutes")
	}
	return h, nil
}

func (s *Server) filteredPeriods(input analyticsFilter) ([]models.Period, error) {
	var filter storage.PeriodFilter
	if input.Habit != "" {
		h, err := s.repo.GetHabit(input.Habit)
		if err != nil {
			return nil, err
		}
		filter.HabitID = h.ID
	}
	filter.PeriodDays = input.PeriodDays
	return s.repo.Periods(filter, true)
}

func toRunOutput(r models.Run) runOutput {
	return runOutput{
		Kind:   r.Kind(),
		Habit:  r.HabitName,
		Length: r.Length,
		From:   r.Start.Format("2006-01-02"),
		To:     r.End.Format("2006-01-02"),
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
