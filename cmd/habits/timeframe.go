// ABOUTME: Shared timeframe flags for analyses over a window.
// ABOUTME: Week and month shortcuts, or explicit start/end dates.
package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/period"
	"github.com/harperreed/habits/internal/storage"
)

type timeframe struct {
	currentWeek  bool
	lastWeek     bool
	currentMonth bool
	lastMonth    bool
	start        string
	end          string
}

func (tf *timeframe) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&tf.currentWeek, "current-week", "w", false, "analyze the current week")
	cmd.Flags().BoolVarP(&tf.lastWeek, "last-week", "W", false, "analyze the last week")
	cmd.Flags().BoolVarP(&tf.currentMonth, "current-month", "m", false, "analyze the current month")
	cmd.Flags().BoolVarP(&tf.lastMonth, "last-month", "M", false, "analyze the last month")
	cmd.Flags().StringVarP(&tf.start, "start", "s", "", "start of timeframe to analyze (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&tf.end, "end", "e", "", "end of timeframe to analyze (YYYY-MM-DD)")
}

// window resolves the flags into a period filter. The shortcuts align to
// calendar weeks (Monday) and months; an explicit start without an end
// runs through today.
func (tf *timeframe) window() (storage.PeriodFilter, error) {
	var filter storage.PeriodFilter
	today := period.DateOf(time.Now())

	switch {
	case tf.currentWeek || tf.lastWeek:
		start := today
		if tf.lastWeek {
			start = start.AddDate(0, 0, -7)
		}
		start = period.Anchor(start, 7)
		filter.Start = start
		filter.End = start.AddDate(0, 0, 6)

	case tf.currentMonth || tf.lastMonth:
		start := period.Anchor(today, 30)
		if tf.lastMonth {
			start = start.AddDate(0, -1, 0)
		}
		filter.Start = start
		filter.End = start.AddDate(0, 1, -1)

	case tf.start != "":
		start, err := parseDate(tf.start)
		if err != nil {
			return filter, err
		}
		end := today
		if tf.end != "" {
			if end, err = parseDate(tf.end); err != nil {
				return filter, err
			}
		}
		filter.Start = start
		filter.End = end
	}

	return filter, nil
}
