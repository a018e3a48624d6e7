// ABOUTME: CLI command for listing habits.
// ABOUTME: Includes current progress and streak per habit.
package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

var listPeriod string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List existing habits",
	Long: `List habits with their current progress and streak.

Examples:
  habits list
  habits list -p week
  habits list -p 14 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		periodDays := 0
		if listPeriod != "" {
			var err error
			if periodDays, err = parsePeriod(listPeriod); err != nil {
				return err
			}
		}

		habits, err := store.ListHabits(periodDays)
		if err != nil {
			return err
		}

		columns := []string{"ID", "created", "name", "task", "period", "goal", "progress", "streak"}
		rows := make([][]string, 0, len(habits))
		for _, h := range habits {
			current, ok, err := currentPeriod(h)
			if err != nil {
				return err
			}
			progress := "no periods defined"
			if ok {
				progress = progressLabel(h, current)
			}
			streak, err := currentStreak(h)
			if err != nil {
				return err
			}

			rows = append(rows, []string{
				strconv.FormatInt(h.ID, 10),
				h.CreatedAt.Format("2006-01-02"),
				h.Name,
				h.Task,
				h.PeriodLabel(),
				h.GoalLabel(),
				progress,
				streakLabel(streak),
			})
		}
		return printRows(columns, rows)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listPeriod, "period", "p", "", "filter by period length (number of days, or 'day', 'week', 'month')")
	rootCmd.AddCommand(listCmd)
}
