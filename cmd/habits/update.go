// ABOUTME: CLI command for updating an existing habit.
// ABOUTME: Only the provided flags change; the rest stays as is.
package main

import (
	"github.com/spf13/cobra"
)

var (
	updateName   string
	updateTask   string
	updatePeriod string
	updateGoal   string
	updateUnit   string
)

var updateCmd = &cobra.Command{
	Use:   "update <habit>",
	Short: "Update a habit",
	Long: `Update a habit addressed by id or name. Changing the period length
realigns all periods from the habit's first day.

Examples:
  habits update reading -t "read two chapters" -g 2
  habits update 3 -p week`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := store.GetHabit(args[0])
		if err != nil {
			return err
		}

		if updateName != "" {
			if h.Name, err = parseName(updateName); err != nil {
				return err
			}
		}
		if updateTask != "" {
			if h.Task, err = parseName(updateTask); err != nil {
				return err
			}
		}
		if updatePeriod != "" {
			if h.PeriodDays, err = parsePeriod(updatePeriod); err != nil {
				return err
			}
		}
		if updateGoal != "" {
			if h.Goal, err = parseAmount(updateGoal); err != nil {
				return err
			}
		}
		if updateUnit != "" {
			if h.Unit, err = parseName(updateUnit); err != nil {
				return err
			}
		}

		if err := store.UpdateHabit(h); err != nil {
			return err
		}
		return success("habit updated")
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateName, "name", "n", "", "new name of the habit")
	updateCmd.Flags().StringVarP(&updateTask, "task", "t", "", "new task description")
	updateCmd.Flags().StringVarP(&updatePeriod, "period", "p", "", "new period length")
	updateCmd.Flags().StringVarP(&updateGoal, "goal", "g", "", "required amount of progress per period to complete task")
	updateCmd.Flags().StringVarP(&updateUnit, "unit", "u", "", "unit of progress, e.g., minutes, meters, pages")
	rootCmd.AddCommand(updateCmd)
}
