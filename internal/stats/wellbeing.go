package stats

import (
	"math"

	"github.com/shreywv2007/StudyFlow/internal/models"
)

// SummarizeWellbeing averages sleep and stress (one decimal) and tallies moods.
func SummarizeWellbeing(entries []models.WellbeingEntry) models.WellbeingSummary {
	sum := models.WellbeingSummary{Entries: len(entries), Moods: map[string]int{}}
	if len(entries) == 0 {
		return sum
	}
	var sleep float64
	var stress int
	for _, e := range entries {
		sleep += e.SleepHours
		stress += e.StressLevel
		if e.Mood != "" {
			sum.Moods[e.Mood]++
		}
	}
	n := float64(len(entries))
	sum.AvgSleepHours = math.Round(sleep/n*10) / 10
	sum.AvgStress = math.Round(float64(stress)/n*10) / 10
	return sum
}
