package stats

import (
	"time"

	"github.com/shreywv2007/StudyFlow/internal/models"
)

// RecentLimit is how many sessions the progress view lists.
const RecentLimit = 10

// BuildDashboard combines a user's rows into the dashboard view.
func BuildDashboard(tasks []models.Task, courses []models.Course, sessions []models.StudySession, today time.Time) models.Dashboard {
	done, total := TaskCounts(tasks)
	return models.Dashboard{
		TasksDone:     done,
		TotalTasks:    total,
		StudyHours:    WeeklyStudyHours(sessions, today),
		GPA:           GPA(courses),
		Streak:        Streak(sessions, today),
		UpcomingTasks: UpcomingTasks(tasks, today, UpcomingLimit),
	}
}

// BuildProgress combines a user's sessions and check-ins into the progress view.
func BuildProgress(sessions []models.StudySession, entries []models.WellbeingEntry) models.Progress {
	return models.Progress{
		StudyTimeBySubject: StudyTimeBySubject(sessions),
		RecentSessions:     RecentSessions(sessions, RecentLimit),
		Wellbeing:          SummarizeWellbeing(entries),
	}
}
