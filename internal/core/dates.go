package core

import (
	"fmt"
	"strconv"
	"time"
)

// DateFormat is the canonical transaction date layout.
const DateFormat = "2006-01-02"

// SplitDate derives the denormalized (month, year) pair from an ISO
// YYYY-MM-DD date string: month is the two-character MM substring, year
// the integer prefix. The date is validated as a real calendar date first,
// so "2024-13-01" fails rather than producing month "13".
func SplitDate(date string) (month string, year int, err error) {
	if _, perr := time.Parse(DateFormat, date); perr != nil {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	year, _ = strconv.Atoi(date[:4])
	return date[5:7], year, nil
}

// PreviousMonth returns the (month, year) pair immediately before the
// given one, wrapping "01" to "12" of the prior year.
func PreviousMonth(month string, year int) (string, int) {
	m, _ := strconv.Atoi(month)
	if m <= 1 {
		return "12", year - 1
	}
	return fmt.Sprintf("%02d", m-1), year
}

// Today returns the current date in the canonical layout.
func Today() string {
	return time.Now().Format(DateFormat)
}
