package models

import "strings"

// Moods accepted by a check-in.
const (
	MoodGreat = "great"
	MoodGood  = "good"
	MoodOkay  = "okay"
	MoodTough = "tough"
)

const (
	DefaultSleepHours  = 7.0
	DefaultStressLevel = 5
	MinStressLevel     = 1
	MaxStressLevel     = 10
)

// WellbeingEntry is one daily check-in. Entries are read-only once written.
type WellbeingEntry struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Date        string  `json:"date"`
	Mood        string  `json:"mood"`
	SleepHours  float64 `json:"sleep_hours"`
	StressLevel int     `json:"stress_level"`
	Notes       string  `json:"notes"`
}

// CreateWellbeingRequest is the JSON body for POST /api/wellbeing.
type CreateWellbeingRequest struct {
	UserID      string   `json:"userId"`
	Mood        string   `json:"mood"`
	SleepHours  *float64 `json:"sleepHours"`
	StressLevel *int     `json:"stressLevel"`
	Notes       string   `json:"notes"`
}

// ParseMood normalizes a mood label ("Great" -> "great") and reports whether it is known.
func ParseMood(s string) (string, bool) {
	m := strings.ToLower(strings.TrimSpace(s))
	switch m {
	case MoodGreat, MoodGood, MoodOkay, MoodTough:
		return m, true
	}
	return "", false
}
