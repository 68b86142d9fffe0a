package models

// DefaultCredits applies when a course is created without credits.
const DefaultCredits = 3

// Course is a graded course. Grade stays nil until one is assigned.
type Course struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	Credits   int     `json:"credits"`
	Grade     *string `json:"grade"`
	CreatedAt string  `json:"created_at"`
}

// CreateCourseRequest is the JSON body for POST /api/courses.
type CreateCourseRequest struct {
	UserID  string  `json:"userId"`
	Name    string  `json:"name"`
	Code    string  `json:"code"`
	Credits *int    `json:"credits"`
	Grade   *string `json:"grade"`
}

// UpdateCourseRequest is the JSON body for PUT /api/courses/{id}.
type UpdateCourseRequest struct {
	Name    *string `json:"name"`
	Code    *string `json:"code"`
	Credits *int    `json:"credits"`
	Grade   *string `json:"grade"`
}
