package models

// DefaultSessionMinutes is one pomodoro.
const DefaultSessionMinutes = 25

// StudySession is a block of study time. Sessions are never edited in place.
type StudySession struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Subject   string `json:"subject"`
	Duration  int    `json:"duration"`
	Date      string `json:"date"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at"`
}

// CreateStudySessionRequest is the JSON body for POST /api/study-sessions.
type CreateStudySessionRequest struct {
	UserID   string `json:"userId"`
	Subject  string `json:"subject"`
	Duration *int   `json:"duration"`
	Date     string `json:"date"`
	Notes    string `json:"notes"`
}
