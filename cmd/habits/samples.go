// ABOUTME: CLI command for inserting predefined sample habits.
// ABOUTME: Only offered while the database is still empty.
package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Insert a set of predefined habits incl. random progress",
	Long: `Insert five predefined habits with randomized progress over the past
100 days, for trying out the tracker. Only works on an empty database.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		empty, err := store.IsEmpty()
		if err != nil {
			return err
		}
		if !empty {
			return errors.New("samples can only be inserted into an empty database")
		}
		if err := store.InsertSamples(); err != nil {
			return err
		}
		return success("five predefined habits created")
	},
}

func init() {
	rootCmd.AddCommand(samplesCmd)
}
