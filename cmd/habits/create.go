// ABOUTME: CLI command for creating a new habit.
// ABOUTME: Validates name, task, period, goal, and unit inputs.
package main

import (
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/models"
)

var (
	createPeriod string
	createGoal   string
	createUnit   string
)

var createCmd = &cobra.Command{
	Use:   "create <name> <task>",
	Short: "Create a new habit",
	Long: `Create a new habit with a short name and an imperative task description.

Examples:
  habits create reading "read a chapter"
  habits create sports "90 minutes of sports per week" -p week -g 90 -u minutes
  habits create study "read a minimum of pages" -p 14 -g 100 -u pages`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := parseName(args[0])
		if err != nil {
			return err
		}
		task, err := parseName(args[1])
		if err != nil {
			return err
		}
		periodDays, err := parsePeriod(createPeriod)
		if err != nil {
			return err
		}
		goal, err := parseAmount(createGoal)
		if err != nil {
			return err
		}
		unit := ""
		if createUnit != "" {
			if unit, err = parseName(createUnit); err != nil {
				return err
			}
		}

		h := models.NewHabit(name, task, periodDays, goal, unit)
		if err := store.CreateHabit(h); err != nil {
			return err
		}
		return success("habit created")
	},
}

func init() {
	createCmd.Flags().StringVarP(&createPeriod, "period", "p", "1", "period length (number of days, or 'day', 'week', 'month')")
	createCmd.Flags().StringVarP(&createGoal, "goal", "g", "1", "required amount of progress per period to complete task")
	createCmd.Flags().StringVarP(&createUnit, "unit", "u", "", "unit of progress, e.g., minutes, meters, pages")
	rootCmd.AddCommand(createCmd)
}
