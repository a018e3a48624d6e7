// ABOUTME: Export and import functionality for habit data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/harperreed/habits/internal/models"
)

// ExportData represents the full export format for habit data.
type ExportData struct {
	Version    string             `json:"version" yaml:"version"`
	ExportedAt time.Time          `json:"exported_at" yaml:"exported_at"`
	Tool       string             `json:"tool" yaml:"tool"`
	Habits     []*models.Habit    `json:"habits" yaml:"habits"`
	Progress   []*models.Progress `json:"progress" yaml:"progress"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	habits, err := d.ListHabits(0)
	if err != nil {
		return nil, err
	}

	rows, err := d.db.Query(`
		SELECT id, habit_id, recorded_at, amount FROM progress
		ORDER BY habit_id, recorded_at`)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var progress []*models.Progress
	for rows.Next() {
		var p models.Progress
		var id string
		if err := rows.Scan(&id, &p.HabitID, &p.RecordedAt, &p.Amount); err != nil {
			return nil, fmt.Errorf("list progress: %w", err)
		}
		if p.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("list progress: %w", err)
		}
		progress = append(progress, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "habits",
		Habits:     habits,
		Progress:   progress,
	}, nil
}

// ImportData imports data from an export file. Habit ids are reassigned;
// progress events follow their habit by its exported id.
func (d *DB) ImportData(data *ExportData) error {
	idMap := make(map[int64]int64, len(data.Habits))
	for _, h := range data.Habits {
		oldID := h.ID
		if err := d.CreateHabit(h); err != nil {
			return fmt.Errorf("import habit %q: %w", h.Name, err)
		}
		idMap[oldID] = h.ID
	}
	for _, p := range data.Progress {
		newID, ok := idMap[p.HabitID]
		if !ok {
			return fmt.Errorf("import progress %s: unknown habit id %d", p.ID, p.HabitID)
		}
		p.HabitID = newID
		if err := d.AddProgress(p); err != nil {
			return fmt.Errorf("import progress %s: %w", p.ID, err)
		}
	}
	return nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML, with progress grouped by habit.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string                 `yaml:"version"`
		ExportedAt string                 `yaml:"exported_at"`
		Tool       string                 `yaml:"tool"`
		Habits     []yamlHabit            `yaml:"habits"`
		Progress   map[string][]yamlEvent `yaml:"progress"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Habits:     make([]yamlHabit, 0, len(data.Habits)),
		Progress:   make(map[string][]yamlEvent),
	}

	names := make(map[int64]string, len(data.Habits))
	for _, h := range data.Habits {
		names[h.ID] = h.Name
		yamlData.Habits = append(yamlData.Habits, yamlHabit{
			Name:      h.Name,
			Task:      h.Task,
			Period:    h.PeriodLabel(),
			Goal:      h.Goal,
			Unit:      h.Unit,
			CreatedAt: h.CreatedAt.Format(time.RFC3339),
		})
	}
	for _, p := range data.Progress {
		name := names[p.HabitID]
		yamlData.Progress[name] = append(yamlData.Progress[name], yamlEvent{
			ID:         p.ID.String()[:8],
			RecordedAt: p.RecordedAt.Format(time.RFC3339),
			Amount:     p.Amount,
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlHabit struct {
	Name      string `yaml:"name"`
	Task      string `yaml:"task"`
	Period    string `yaml:"period"`
	Goal      int    `yaml:"goal"`
	Unit      string `yaml:"unit,omitempty"`
	CreatedAt string `yaml:"created_at"`
}

type yamlEvent struct {
	ID         string `yaml:"id"`
	RecordedAt string `yaml:"recorded_at"`
	Amount     int    `yaml:"amount"`
}

// ExportMarkdown exports habits and their progress as Markdown tables.
func (d *DB) ExportMarkdown() (string, error) {
	data, err := d.GetAllData()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Habits Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	sb.WriteString("## Habits\n\n")
	sb.WriteString("| Name | Task | Period | Goal | Created |\n")
	sb.WriteString("|------|------|--------|------|--------|\n")
	for _, h := range data.Habits {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			h.Name, h.Task, h.PeriodLabel(), h.GoalLabel(),
			h.CreatedAt.Format("2006-01-02")))
	}
	sb.WriteString("\n")

	byHabit := make(map[int64][]*models.Progress)
	for _, p := range data.Progress {
		byHabit[p.HabitID] = append(byHabit[p.HabitID], p)
	}
	for _, h := range data.Habits {
		events := byHabit[h.ID]
		if len(events) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("## %s\n\n", h.Name))
		sb.WriteString("| Date | Amount |\n")
		sb.WriteString("|------|--------|\n")
		for _, p := range events {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", p.RecordedAt.Format("2006-01-02 15:04"), p.Amount))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&exportData)
}
