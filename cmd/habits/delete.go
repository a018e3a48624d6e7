// ABOUTME: CLI command for deleting a habit.
// ABOUTME: All of the habit's progress events go with it.
package main

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <habit>",
	Short: "Delete a habit",
	Long:  `Delete a habit addressed by id or name, including all of its progress.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeleteHabit(args[0]); err != nil {
			return err
		}
		return success("habit deleted")
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset <habit>",
	Short: "Reset all progress for a habit",
	Long:  `Delete all progress events for a habit, keeping the habit itself.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := store.GetHabit(args[0])
		if err != nil {
			return err
		}
		if err := store.ResetProgress(h.ID); err != nil {
			return err
		}
		return success("progress reset")
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(resetCmd)
}
