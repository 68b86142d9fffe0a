package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/shreywv2007/StudyFlow/internal/models"
)

const taskColumns = "id, user_id, title, due_date, priority, type, completed, created_at"

func taskFromRow(r Row) models.Task {
	return models.Task{
		ID:        r.String("id"),
		UserID:    r.String("user_id"),
		Title:     r.String("title"),
		DueDate:   r.String("due_date"),
		Priority:  r.String("priority"),
		Type:      r.String("type"),
		Completed: r.Bool("completed"),
		CreatedAt: r.String("created_at"),
	}
}

// CreateTask creates a new, not yet completed task
func (s *Store) CreateTask(ctx context.Context, userID, title, dueDate, priority, taskType string) (*models.Task, error) {
	id := uuid.NewString()
	_, err := s.Exec(ctx, `
		INSERT INTO tasks (id, user_id, title, due_date, priority, type, completed)
		VALUES (?, ?, ?, ?, ?, ?, 0)
	`, id, userID, title, dueDate, priority, taskType)
	if err != nil {
		return nil, err
	}
	return s.GetTask(ctx, id)
}

// GetTask retrieves a task by ID
func (s *Store) GetTask(ctx context.Context, id string) (*models.Task, error) {
	row, err := s.FetchOne(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	t := taskFromRow(row)
	return &t, nil
}

// ListTasks returns all tasks for a user, soonest due first
func (s *Store) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	rows, err := s.FetchAll(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE user_id = ?
		ORDER BY due_date ASC, created_at ASC, rowid ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	tasks := make([]models.Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, taskFromRow(r))
	}
	return tasks, nil
}

// UpdateTask applies the non-nil fields of req and returns the stored row
func (s *Store) UpdateTask(ctx context.Context, id string, req models.UpdateTaskRequest) (*models.Task, error) {
	var a Assignments
	if req.Title != nil {
		a.Set("title", *req.Title)
	}
	if req.DueDate != nil {
		a.Set("due_date", *req.DueDate)
	}
	if req.Priority != nil {
		a.Set("priority", *req.Priority)
	}
	if req.Type != nil {
		a.Set("type", *req.Type)
	}
	if req.Completed != nil {
		a.Set("completed", boolInt(*req.Completed))
	}
	if err := s.update(ctx, "tasks", "id", id, a); err != nil {
		return nil, err
	}
	return s.GetTask(ctx, id)
}

// DeleteTask deletes a task
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	_, err := s.Exec(ctx, "DELETE FROM tasks WHERE id = ?", id)
	return err
}
