package models

// Dashboard is the response for GET /api/dashboard/{userId}.
type Dashboard struct {
	TasksDone     int     `json:"tasksDone"`
	TotalTasks    int     `json:"totalTasks"`
	StudyHours    string  `json:"studyHours"`
	GPA           float64 `json:"gpa"`
	Streak        int     `json:"streak"`
	UpcomingTasks []Task  `json:"upcomingTasks"`
}

// SubjectTotal is the minutes studied for one subject.
type SubjectTotal struct {
	Subject string `json:"subject"`
	Total   int    `json:"total"`
}

// WellbeingSummary condenses a run of check-ins.
type WellbeingSummary struct {
	Entries       int            `json:"entries"`
	AvgSleepHours float64        `json:"avgSleepHours"`
	AvgStress     float64        `json:"avgStress"`
	Moods         map[string]int `json:"moods"`
}

// Progress is the response for GET /api/progress/{userId}.
type Progress struct {
	StudyTimeBySubject []SubjectTotal   `json:"studyTimeBySubject"`
	RecentSessions     []StudySession   `json:"recentSessions"`
	Wellbeing          WellbeingSummary `json:"wellbeing"`
}
