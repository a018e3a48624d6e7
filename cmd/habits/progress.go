// ABOUTME: CLI command for progressing a habit's task.
// ABOUTME: Direct amounts, backdated progress, and timed sessions.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/models"
)

var (
	progressAmount string
	progressDate   string
	progressStart  bool
	progressEnd    bool
)

var progressCmd = &cobra.Command{
	Use:   "progress <habit>",
	Short: "Check off or progress the task for a habit",
	Long: `Record progress for a habit addressed by id or name. Without flags one
unit of progress is added, checking off a simple task.

Habits measured in minutes can be timed: --start begins counting,
--end records the elapsed minutes.

Examples:
  habits progress reading
  habits progress sports -a 30
  habits progress reading -d 2025-06-01
  habits progress sports --start
  habits progress sports --end`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := store.GetHabit(args[0])
		if err != nil {
			return err
		}

		if progressStart || progressEnd {
			return runSession(h)
		}

		amount, err := parseAmount(progressAmount)
		if err != nil {
			return err
		}
		p := models.NewProgress(h.ID, amount)
		if progressDate != "" {
			d, err := parseDate(progressDate)
			if err != nil {
				return err
			}
			p.WithRecordedAt(d)
		}
		if err := store.AddProgress(p); err != nil {
			return err
		}

		current, ok, err := currentPeriod(h)
		if err != nil {
			return err
		}
		status := models.StatusIncomplete.String()
		if ok {
			status = progressLabel(h, current)
		}
		return success("progress added - new status: %s", status)
	},
}

func runSession(h *models.Habit) error {
	if progressStart && progressEnd {
		return errors.New("choose either --start or --end")
	}
	if h.Unit != "minutes" {
		return errors.New("action only valid for tasks measured in minutes")
	}

	if progressStart {
		if err := store.StartSession(h.ID); err != nil {
			return err
		}
		return success("progress started - counting the minutes for you...")
	}

	minutes, err := store.EndSession(h.ID)
	if err != nil {
		return err
	}
	return success("progress updated by %d minutes", minutes)
}

func init() {
	progressCmd.Flags().StringVarP(&progressAmount, "amount", "a", "1", "amount of progress")
	progressCmd.Flags().StringVarP(&progressDate, "date", "d", "", "date of progress already achieved in the past (YYYY-MM-DD)")
	progressCmd.Flags().BoolVarP(&progressStart, "start", "s", false, "start measuring minutes whilst you are progressing the task")
	progressCmd.Flags().BoolVarP(&progressEnd, "end", "e", false, "update the task by the elapsed minutes since calling 'start'")
	rootCmd.AddCommand(progressCmd)
}
