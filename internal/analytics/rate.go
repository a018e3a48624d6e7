// ABOUTME: Completion-rate aggregator.
// ABOUTME: One fold pass grouping periods by habit into tallies.
package analytics

import "github.com/harperreed/habits/internal/models"

// CompletionRates folds periods grouped by habit into completed/total
// tallies. The input must be ordered by habit (either period direction
// works); the running tally is flushed whenever the habit changes, so
// habits contributing zero periods never appear.
func CompletionRates(periods []models.Period) []models.Tally {
	var tallies []models.Tally
	var cur *models.Tally

	for _, p := range periods {
		if cur != nil && cur.HabitID == p.HabitID {
			cur.Total++
			if p.IsComplete() {
				cur.Completed++
			}
			continue
		}
		if cur != nil {
			tallies = append(tallies, *cur)
		}
		completed := 0
		if p.IsComplete() {
			completed = 1
		}
		cur = &models.Tally{
			HabitID:   p.HabitID,
			HabitName: p.HabitName,
			Completed: completed,
			Total:     1,
		}
	}
	if cur != nil {
		tallies = append(tallies, *cur)
	}
	return tallies
}
