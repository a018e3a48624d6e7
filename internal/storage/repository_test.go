// ABOUTME: Tests for Repository interface implementations.
// ABOUTME: Verifies habit CRUD, progress, and sessions using SQLite.
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/habits/internal/models"
)

func TestCreateAndGetHabit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	h := models.NewHabit("sports", "90 minutes of sports per week", 7, 90, "minutes")
	if err := db.CreateHabit(h); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	if h.ID == 0 {
		t.Fatal("CreateHabit did not assign an id")
	}

	// Retrieve by name
	got, err := db.GetHabit("sports")
	if err != nil {
		t.Fatalf("GetHabit by name failed: %v", err)
	}
	if got.ID != h.ID {
		t.Errorf("ID mismatch: got %v, want %v", got.ID, h.ID)
	}
	if got.Task != h.Task {
		t.Errorf("Task mismatch: got %q, want %q", got.Task, h.Task)
	}
	if got.PeriodDays != 7 || got.Goal != 90 || got.Unit != "minutes" {
		t.Errorf("fields mismatch: got %+v", got)
	}

	// Retrieve by numeric id
	got, err = db.GetHabit("1")
	if err != nil {
		t.Fatalf("GetHabit by id failed: %v", err)
	}
	if got.Name != "sports" {
		t.Errorf("Name mismatch: got %q, want sports", got.Name)
	}
}

func TestGetHabitNotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetHabit("nope"); !errors.Is(err, models.ErrHabitNotFound) {
		t.Errorf("expected ErrHabitNotFound, got %v", err)
	}
	if _, err := db.GetHabit("42"); !errors.Is(err, models.ErrHabitNotFound) {
		t.Errorf("expected ErrHabitNotFound for unknown id, got %v", err)
	}
}

func TestCreateHabitDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.CreateHabit(models.NewHabit("reading", "read a book", 1, 1, "")); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	err := db.CreateHabit(models.NewHabit("reading", "read another book", 7, 2, ""))
	if !errors.Is(err, models.ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

func TestUpdateHabit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	h := models.NewHabit("study", "read pages", 14, 100, "pages")
	if err := db.CreateHabit(h); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}

	h.Task = "read more pages"
	h.Goal = 150
	if err := db.UpdateHabit(h); err != nil {
		t.Fatalf("UpdateHabit failed: %v", err)
	}

	got, err := db.GetHabit("study")
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if got.Task != "read more pages" || got.Goal != 150 {
		t.Errorf("update not persisted: got %+v", got)
	}

	missing := &models.Habit{ID: 999, Name: "x", Task: "y", PeriodDays: 1, Goal: 1}
	if err := db.UpdateHabit(missing); !errors.Is(err, models.ErrHabitNotFound) {
		t.Errorf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestDeleteHabitCascadesProgress(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	h := models.NewHabit("sports", "do sports", 7, 90, "minutes")
	if err := db.CreateHabit(h); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	if err := db.AddProgress(models.NewProgress(h.ID, 30)); err != nil {
		t.Fatalf("AddProgress failed: %v", err)
	}

	if err := db.DeleteHabit("sports"); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}

	var n int
	if err := db.db.QueryRow(`SELECT COUNT(*) FROM progress`).Scan(&n); err != nil {
		t.Fatalf("count progress: %v", err)
	}
	if n != 0 {
		t.Errorf("expected progress cascade, %d rows remain", n)
	}

	if err := db.DeleteHabit("sports"); !errors.Is(err, models.ErrHabitNotFound) {
		t.Errorf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestListHabitsFilterAndOrder(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, h := range []*models.Habit{
		models.NewHabit("veggy day", "no meat", 7, 1, ""),
		models.NewHabit("morning stretching", "stretch", 1, 1, ""),
		models.NewHabit("sports", "do sports", 7, 90, "minutes"),
	} {
		if err := db.CreateHabit(h); err != nil {
			t.Fatalf("CreateHabit failed: %v", err)
		}
	}

	all, err := db.ListHabits(0)
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 habits, got %d", len(all))
	}
	if all[0].Name != "morning stretching" || all[2].Name != "veggy day" {
		t.Errorf("habits not ordered by name: %v, %v, %v", all[0].Name, all[1].Name, all[2].Name)
	}

	weekly, err := db.ListHabits(7)
	if err != nil {
		t.Fatalf("ListHabits(7) failed: %v", err)
	}
	if len(weekly) != 2 {
		t.Errorf("expected 2 weekly habits, got %d", len(weekly))
	}
}

func TestIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	empty, err := db.IsEmpty()
	if err != nil {
		t.Fatalf("IsEmpty failed: %v", err)
	}
	if !empty {
		t.Error("fresh database should be empty")
	}

	if err := db.CreateHabit(models.NewHabit("a", "b", 1, 1, "")); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	empty, err = db.IsEmpty()
	if err != nil {
		t.Fatalf("IsEmpty failed: %v", err)
	}
	if empty {
		t.Error("database with a habit should not be empty")
	}
}

func TestResetProgress(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	h := models.NewHabit("study", "read", 14, 100, "pages")
	if err := db.CreateHabit(h); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := db.AddProgress(models.NewProgress(h.ID, 10)); err != nil {
			t.Fatalf("AddProgress failed: %v", err)
		}
	}

	if err := db.ResetProgress(h.ID); err != nil {
		t.Fatalf("ResetProgress failed: %v", err)
	}

	periods, err := db.Periods(PeriodFilter{HabitID: h.ID}, false)
	if err != nil {
		t.Fatalf("Periods failed: %v", err)
	}
	for _, p := range periods {
		if p.Progress != 0 {
			t.Errorf("period %d still has progress %d after reset", p.Nr, p.Progress)
		}
	}
}

func TestSessionConflicts(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	h := models.NewHabit("sports", "do sports", 7, 90, "minutes")
	if err := db.CreateHabit(h); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}

	if _, err := db.EndSession(h.ID); !errors.Is(err, models.ErrSessionNotRunning) {
		t.Errorf("expected ErrSessionNotRunning, got %v", err)
	}

	if err := db.StartSession(h.ID); err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if err := db.StartSession(h.ID); !errors.Is(err, models.ErrSessionRunning) {
		t.Errorf("expected ErrSessionRunning, got %v", err)
	}
}

func TestEndSessionElapsedMinutes(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	h := models.NewHabit("sports", "do sports", 7, 90, "minutes")
	if err := db.CreateHabit(h); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	if err := db.StartSession(h.ID); err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	// Backdate the open session by five minutes
	started := time.Now().Add(-5 * time.Minute)
	if _, err := db.db.Exec(`UPDATE progress SET recorded_at = ? WHERE habit_id = ? AND amount = 0`,
		started, h.ID); err != nil {
		t.Fatalf("backdate session: %v", err)
	}

	minutes, err := db.EndSession(h.ID)
	if err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}
	if minutes != 5 {
		t.Errorf("expected 5 elapsed minutes, got %d", minutes)
	}

	// Sentinel is gone, a second end fails
	if _, err := db.EndSession(h.ID); !errors.Is(err, models.ErrSessionNotRunning) {
		t.Errorf("expected ErrSessionNotRunning after end, got %v", err)
	}

	// The session became a regular progress event
	periods, err := db.Periods(PeriodFilter{HabitID: h.ID}, false)
	if err != nil {
		t.Fatalf("Periods failed: %v", err)
	}
	total := 0
	for _, p := range periods {
		total += p.Progress
	}
	if total != 5 {
		t.Errorf("expected 5 minutes of progress, got %d", total)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	h := models.NewHabit("sports", "do sports", 7, 90, "minutes")
	if err := db.CreateHabit(h); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	if err := db.AddProgress(models.NewProgress(h.ID, 30)); err != nil {
		t.Fatalf("AddProgress failed: %v", err)
	}

	data, err := db.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	db2 := setupTestDB(t)
	defer db2.Close()
	if err := db2.ImportJSON(data); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	got, err := db2.GetHabit("sports")
	if err != nil {
		t.Fatalf("GetHabit after import failed: %v", err)
	}
	if got.Task != h.Task || got.Goal != h.Goal {
		t.Errorf("imported habit mismatch: got %+v", got)
	}
	all, err := db2.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	if len(all.Progress) != 1 || all.Progress[0].Amount != 30 {
		t.Errorf("imported progress mismatch: %+v", all.Progress)
	}
}

func TestExportYAMLAndMarkdown(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	h := models.NewHabit("reading", "read a chapter", 1, 1, "")
	if err := db.CreateHabit(h); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	if err := db.AddProgress(models.NewProgress(h.ID, 1)); err != nil {
		t.Fatalf("AddProgress failed: %v", err)
	}

	yamlOut, err := db.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}
	if len(yamlOut) == 0 {
		t.Error("ExportYAML returned empty output")
	}

	md, err := db.ExportMarkdown()
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	if md == "" {
		t.Error("ExportMarkdown returned empty output")
	}
}

func TestInsertSamples(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.InsertSamples(); err != nil {
		t.Fatalf("InsertSamples failed: %v", err)
	}

	habits, err := db.ListHabits(0)
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(habits) != 5 {
		t.Fatalf("expected 5 sample habits, got %d", len(habits))
	}

	// The first sample habit always has progress today
	h, err := db.GetHabit("morning stretching")
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	cursor, err := db.PeriodsDesc(h)
	if err != nil {
		t.Fatalf("PeriodsDesc failed: %v", err)
	}
	defer cursor.Close()
	p, ok, err := cursor.Next()
	if err != nil || !ok {
		t.Fatalf("Next failed: ok=%v err=%v", ok, err)
	}
	if p.Progress < 1 {
		t.Errorf("expected progress today, got %d", p.Progress)
	}
}

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "habits-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "habits.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}
