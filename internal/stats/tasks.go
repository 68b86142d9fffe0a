package stats

import (
	"sort"
	"time"

	"github.com/shreywv2007/StudyFlow/internal/models"
)

// UpcomingLimit caps the dashboard's upcoming list.
const UpcomingLimit = 5

// UpcomingTasks returns incomplete tasks due today or later, soonest first,
// at most limit of them.
func UpcomingTasks(tasks []models.Task, today time.Time, limit int) []models.Task {
	day := Day(today)
	out := make([]models.Task, 0, limit)
	for _, t := range tasks {
		if !t.Completed && t.DueDate >= day {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate < out[j].DueDate })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TaskCounts returns how many tasks are completed and how many exist.
func TaskCounts(tasks []models.Task) (done, total int) {
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return done, len(tasks)
}
