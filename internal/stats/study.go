package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/shreywv2007/StudyFlow/internal/models"
)

// WeekDays is the width of the trailing window, today included.
const WeekDays = 7

// WeeklyMinutes sums session minutes dated within the trailing week ending
// today. Dates are compared as strings.
func WeeklyMinutes(sessions []models.StudySession, today time.Time) int {
	end := Day(today)
	start := daysBefore(today, WeekDays-1)
	total := 0
	for _, s := range sessions {
		if s.Date >= start && s.Date <= end {
			total += s.Duration
		}
	}
	return total
}

// WeeklyStudyHours is WeeklyMinutes in hours with one decimal, e.g. "5.3".
func WeeklyStudyHours(sessions []models.StudySession, today time.Time) string {
	return FormatHours(WeeklyMinutes(sessions, today))
}

// FormatHours converts minutes to hours rounded half-up to one decimal.
// Integer arithmetic keeps 315 minutes (5.25h) at "5.3".
func FormatHours(minutes int) string {
	if minutes < 0 {
		return "-" + FormatHours(-minutes)
	}
	tenths := (minutes*10 + 30) / 60
	return fmt.Sprintf("%d.%d", tenths/10, tenths%10)
}

// Streak counts consecutive calendar days with at least one study session,
// ending today. A streak that ended yesterday is still alive, since today
// is not over yet.
func Streak(sessions []models.StudySession, today time.Time) int {
	days := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		days[s.Date] = true
	}

	offset := 0
	if !days[Day(today)] {
		offset = 1
	}
	streak := 0
	for days[daysBefore(today, offset+streak)] {
		streak++
	}
	return streak
}

// StudyTimeBySubject totals minutes per subject, ordered by subject name.
func StudyTimeBySubject(sessions []models.StudySession) []models.SubjectTotal {
	totals := map[string]int{}
	for _, s := range sessions {
		totals[s.Subject] += s.Duration
	}
	out := make([]models.SubjectTotal, 0, len(totals))
	for subject, total := range totals {
		out = append(out, models.SubjectTotal{Subject: subject, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subject < out[j].Subject })
	return out
}

// RecentSessions returns up to n sessions, latest date first.
func RecentSessions(sessions []models.StudySession, n int) []models.StudySession {
	out := make([]models.StudySession, len(sessions))
	copy(out, sessions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
