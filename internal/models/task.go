package models

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task types.
const (
	TaskTypeTask       = "task"
	TaskTypeExam       = "exam"
	TaskTypeAssignment = "assignment"
	TaskTypeReading    = "reading"
)

// Task is a deadline tracked for a user. Completed is stored as 0/1.
type Task struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	DueDate   string `json:"due_date"`
	Priority  string `json:"priority"`
	Type      string `json:"type"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

// CreateTaskRequest is the JSON body for POST /api/tasks.
type CreateTaskRequest struct {
	UserID   string `json:"userId"`
	Title    string `json:"title"`
	DueDate  string `json:"dueDate"`
	Priority string `json:"priority"`
	Type     string `json:"type"`
}

// UpdateTaskRequest is the JSON body for PUT /api/tasks/{id}. Nil fields are left unchanged.
type UpdateTaskRequest struct {
	Title     *string `json:"title"`
	DueDate   *string `json:"dueDate"`
	Priority  *string `json:"priority"`
	Type      *string `json:"type"`
	Completed *bool   `json:"completed"`
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func ValidTaskType(t string) bool {
	switch t {
	case TaskTypeTask, TaskTypeExam, TaskTypeAssignment, TaskTypeReading:
		return true
	}
	return false
}
