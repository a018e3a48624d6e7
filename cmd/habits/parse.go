// ABOUTME: Input validation for names, amounts, periods, and dates.
// ABOUTME: Rejects blank or hostile strings before they reach storage.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/habits/internal/period"
)

const illegalChars = "\"#$%&'*/;<=>?@[\\]^`{|}~"

// parseName validates a habit name, task, or unit.
func parseName(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("invalid input")
	}
	for _, c := range input {
		if strings.ContainsRune(illegalChars, c) {
			return "", fmt.Errorf("invalid character: %c", c)
		}
	}
	return input, nil
}

// parseAmount validates a positive integer amount.
func parseAmount(input string) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid amount")
	}
	if n < 1 {
		return 0, fmt.Errorf("amount has to be positive")
	}
	return n, nil
}

// parsePeriod validates a period length: "day", "week", "month" (or their
// first letters), or a positive number of days.
func parsePeriod(input string) (int, error) {
	switch input {
	case "d", "day":
		return 1, nil
	case "w", "week":
		return 7, nil
	case "m", "month":
		return 30, nil
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid period length")
	}
	if n < 1 {
		return 0, fmt.Errorf("period has to be positive")
	}
	return n, nil
}

// parseDate validates an ISO date that is not in the future.
func parseDate(input string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", input, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format")
	}
	if d.After(period.DateOf(time.Now())) {
		return time.Time{}, fmt.Errorf("date cannot be in the future")
	}
	return d, nil
}
