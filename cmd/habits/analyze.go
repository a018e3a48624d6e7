// ABOUTME: CLI commands for habit analytics.
// ABOUTME: Streaks, breaks, progress logs, and completion rates.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/analytics"
	"github.com/harperreed/habits/internal/models"
	"github.com/harperreed/habits/internal/storage"
)

var (
	analyzeHabit     string
	analyzePeriod    string
	pastProgressTF   timeframe
	completionRateTF timeframe
)

var analyzeCmd = &cobra.Command{
	Use:     "analyze",
	Aliases: []string{"analyse"},
	Short:   "Analyze habits",
}

var currentProgressCmd = &cobra.Command{
	Use:   "current-progress <habit>",
	Short: "Get the current progress info for a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := store.GetHabit(args[0])
		if err != nil {
			return err
		}
		current, ok, err := currentPeriod(h)
		if err != nil {
			return err
		}
		periodLabel := "no periods defined"
		progress := models.StatusIncomplete.String()
		if ok {
			periodLabel = current.Label()
			progress = progressLabel(h, current)
		}
		return printRows(
			[]string{"habit", "current period", "progress"},
			[][]string{{h.Name, periodLabel, progress}},
		)
	},
}

var currentStreakCmd = &cobra.Command{
	Use:   "current-streak <habit>",
	Short: "Get the current streak info for a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := store.GetHabit(args[0])
		if err != nil {
			return err
		}
		run, err := currentStreak(h)
		if err != nil {
			return err
		}
		return printRows(
			[]string{"habit", "current streak"},
			[][]string{{h.Name, streakLabel(run)}},
		)
	},
}

var pastProgressCmd = &cobra.Command{
	Use:   "past-progress <habit>",
	Short: "Get a list of progress updates for a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := store.GetHabit(args[0])
		if err != nil {
			return err
		}
		filter, err := pastProgressTF.window()
		if err != nil {
			return err
		}
		entries, err := store.ProgressEntries(h, filter)
		if err != nil {
			return err
		}

		// daily habits read better with the date trimmed off
		annotated := analytics.AnnotateProgress(entries, h.PeriodDays == 1)
		rows := make([][]string, 0, len(annotated))
		for _, r := range annotated {
			rows = append(rows, []string{r.Period, r.RecordedAt, strconv.Itoa(r.Amount), r.Status.String()})
		}
		return printRows([]string{"period", "progress date", "amount", "task status"}, rows)
	},
}

var pastStreaksCmd = &cobra.Command{
	Use:   "past-streaks <habit>",
	Short: "Get a list of past streaks and breaks for a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := store.GetHabit(args[0])
		if err != nil {
			return err
		}
		periods, err := store.Periods(storage.PeriodFilter{HabitID: h.ID}, true)
		if err != nil {
			return err
		}
		runs := analytics.TrimLeadingBreaks(analytics.Runs(analytics.SkipCurrent(periods)))

		rows := make([][]string, 0, len(runs))
		for _, r := range runs {
			rows = append(rows, []string{r.Kind(), strconv.Itoa(r.Length), r.Start.Format("2006-01-02"), r.End.Format("2006-01-02")})
		}
		return printRows([]string{"type", "length", "from", "to"}, rows)
	},
}

var maxStreakCmd = &cobra.Command{
	Use:   "max-streak",
	Short: "Get the longest streak",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		periods, err := filteredPeriods()
		if err != nil {
			return err
		}
		best, ok := analytics.MaxStreak(analytics.Runs(periods))
		if !ok {
			return printRows([]string{"habit", "max streak", "from", "to"}, nil)
		}
		return printRows(
			[]string{"habit", "max streak", "from", "to"},
			[][]string{{best.HabitName, strconv.Itoa(best.Length), best.Start.Format("2006-01-02"), best.End.Format("2006-01-02")}},
		)
	},
}

var maxBreakCmd = &cobra.Command{
	Use:   "max-break",
	Short: "Get the longest break",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		periods, err := filteredPeriods()
		if err != nil {
			return err
		}
		runs := analytics.TrimLeadingBreaks(analytics.Runs(analytics.SkipCurrent(periods)))
		worst, ok := analytics.MaxBreak(runs)
		if !ok {
			return printRows([]string{"habit", "max break", "from", "to"}, nil)
		}
		return printRows(
			[]string{"habit", "max break", "from", "to"},
			[][]string{{worst.HabitName, strconv.Itoa(worst.Length), worst.Start.Format("2006-01-02"), worst.End.Format("2006-01-02")}},
		)
	},
}

var completionRateCmd = &cobra.Command{
	Use:   "completion-rate",
	Short: "Get completion rates for a given timeframe",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := completionRateTF.window()
		if err != nil {
			return err
		}
		periods, err := store.Periods(filter, false)
		if err != nil {
			return err
		}
		tallies := analytics.CompletionRates(periods)

		rows := make([][]string, 0, len(tallies))
		for _, t := range tallies {
			rows = append(rows, []string{t.HabitName, strconv.Itoa(t.Completed), strconv.Itoa(t.Total), t.Rate()})
		}
		return printRows([]string{"habit", "completed", "out of", "rate"}, rows)
	},
}

// filteredPeriods resolves the shared habit/period filter flags of the
// max-streak and max-break analyses.
func filteredPeriods() ([]models.Period, error) {
	var filter storage.PeriodFilter
	if analyzeHabit != "" {
		h, err := store.GetHabit(analyzeHabit)
		if err != nil {
			return nil, err
		}
		filter.HabitID = h.ID
	}
	if analyzePeriod != "" {
		days, err := parsePeriod(analyzePeriod)
		if err != nil {
			return nil, err
		}
		filter.PeriodDays = days
	}
	return store.Periods(filter, true)
}

func init() {
	for _, cmd := range []*cobra.Command{maxStreakCmd, maxBreakCmd} {
		cmd.Flags().StringVarP(&analyzeHabit, "habit", "i", "", "filter by id or name of a habit")
		cmd.Flags().StringVarP(&analyzePeriod, "period", "p", "", "filter by period length (number of days, or 'day', 'week', 'month')")
	}
	pastProgressTF.addFlags(pastProgressCmd)
	completionRateTF.addFlags(completionRateCmd)

	analyzeCmd.AddCommand(currentProgressCmd)
	analyzeCmd.AddCommand(currentStreakCmd)
	analyzeCmd.AddCommand(pastProgressCmd)
	analyzeCmd.AddCommand(pastStreaksCmd)
	analyzeCmd.AddCommand(maxStreakCmd)
	analyzeCmd.AddCommand(maxBreakCmd)
	analyzeCmd.AddCommand(completionRateCmd)
	rootCmd.AddCommand(analyzeCmd)
}
