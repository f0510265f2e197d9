package timesheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const clockLayout = "15:04"

// ComputeDuration returns the hours between two "HH:MM" clock times with two
// fraction digits. Empty values count as "00:00". An end before the start is
// taken to be on the following day.
func ComputeDuration(start, end string) (string, error) {
	from, err := parseClock(start)
	if err != nil {
		return "", err
	}
	to, err := parseClock(end)
	if err != nil {
		return "", err
	}
	if to.Before(from) {
		to = to.AddDate(0, 0, 1)
	}
	return formatHours(to.Sub(from).Hours()), nil
}

// parseClock places the clock time on time.Parse's zero date, which is the
// same for every value.
func parseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = "00:00"
	}
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, expected HH:MM", ErrInvalidTimeFormat, s)
	}
	return t, nil
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}
