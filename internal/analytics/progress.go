// ABOUTME: Progress-log formatter ("past progress").
// ABOUTME: Running-sum fold annotating each event with its task status.
package analytics

import (
	"fmt"

	"github.com/harperreed/habits/internal/models"
)

// ProgressRow is one annotated progress event, ready for display.
type ProgressRow struct {
	Period     string            `json:"period"`
	RecordedAt string            `json:"progress_date"`
	Amount     int               `json:"amount"`
	Status     models.TaskStatus `json:"task_status"`
}

// AnnotateProgress folds a habit's chronological progress entries into
// display rows carrying the cumulative task status of each event's period
// at that moment: incomplete below goal, completed on the event that first
// reaches it, exceeded afterwards.
//
// The fold runs oldest-first (the input order) to keep running sums
// correct; the result is reversed so the most recent entry comes first.
// With trimDate set, rows show the period's single date and a time-only
// timestamp, the compact form for daily habits.
func AnnotateProgress(entries []models.ProgressEntry, trimDate bool) []ProgressRow {
	rows := make([]ProgressRow, 0, len(entries))

	lastNr := 0
	sum := 0
	status := models.StatusIncomplete

	for _, e := range entries {
		if e.PeriodNr != lastNr {
			// first event of a new period: reset the running sum
			lastNr = e.PeriodNr
			sum = e.Amount
			status = models.StatusIncomplete
			if sum >= e.Goal {
				status = models.StatusCompleted
			}
		} else {
			sum += e.Amount
			switch {
			case status >= models.StatusCompleted:
				status = models.StatusExceeded
			case sum >= e.Goal:
				status = models.StatusCompleted
			}
		}

		var row ProgressRow
		if trimDate {
			row = ProgressRow{
				Period:     e.PeriodStart.Format("2006-01-02"),
				RecordedAt: e.RecordedAt.Format("15:04:05"),
			}
		} else {
			row = ProgressRow{
				Period:     fmt.Sprintf("%s to %s", e.PeriodStart.Format("2006-01-02"), e.PeriodEnd.Format("2006-01-02")),
				RecordedAt: e.RecordedAt.Format("2006-01-02 15:04:05"),
			}
		}
		row.Amount = e.Amount
		row.Status = status
		rows = append(rows, row)
	}

	// most recent first
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}
