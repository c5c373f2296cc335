package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SeasonLabel renders the Premier League season containing t, e.g. "2025_26".
// Seasons span August through July: any date from August onward belongs to
// the season starting that year, earlier dates to the season started the
// year before.
func SeasonLabel(t time.Time) string {
	start := t.Year()
	if t.Month() < time.August {
		start--
	}
	return fmt.Sprintf("%d_%02d", start, (start+1)%100)
}
