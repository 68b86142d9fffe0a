package stats

import "time"

// DateLayout is the calendar-date format every stored date uses.
const DateLayout = "2006-01-02"

// Day formats t as a UTC calendar date.
func Day(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func daysBefore(t time.Time, n int) string {
	return Day(t.UTC().AddDate(0, 0, -n))
}
