package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/shreywv2007/StudyFlow/internal/models"
)

const courseColumns = "id, user_id, name, code, credits, grade, created_at"

func courseFromRow(r Row) models.Course {
	return models.Course{
		ID:        r.String("id"),
		UserID:    r.String("user_id"),
		Name:      r.String("name"),
		Code:      r.String("code"),
		Credits:   int(r.Int("credits")),
		Grade:     r.StringPtr("grade"),
		CreatedAt: r.String("created_at"),
	}
}

// CreateCourse creates a new course; grade may be nil
func (s *Store) CreateCourse(ctx context.Context, userID, name, code string, credits int, grade *string) (*models.Course, error) {
	id := uuid.NewString()
	_, err := s.Exec(ctx, `
		INSERT INTO courses (id, user_id, name, code, credits, grade) VALUES (?, ?, ?, ?, ?, ?)
	`, id, userID, name, code, credits, grade)
	if err != nil {
		return nil, err
	}
	return s.GetCourse(ctx, id)
}

// GetCourse retrieves a course by ID
func (s *Store) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	row, err := s.FetchOne(ctx, "SELECT "+courseColumns+" FROM courses WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	c := courseFromRow(row)
	return &c, nil
}

// ListCourses returns a user's courses, newest first
func (s *Store) ListCourses(ctx context.Context, userID string) ([]models.Course, error) {
	rows, err := s.FetchAll(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	courses := make([]models.Course, 0, len(rows))
	for _, r := range rows {
		courses = append(courses, courseFromRow(r))
	}
	return courses, nil
}

// UpdateCourse applies the non-nil fields of req
func (s *Store) UpdateCourse(ctx context.Context, id string, req models.UpdateCourseRequest) (*models.Course, error) {
	var a Assignments
	if req.Name != nil {
		a.Set("name", *req.Name)
	}
	if req.Code != nil {
		a.Set("code", *req.Code)
	}
	if req.Credits != nil {
		a.Set("credits", *req.Credits)
	}
	if req.Grade != nil {
		a.Set("grade", *req.Grade)
	}
	if err := s.update(ctx, "courses", "id", id, a); err != nil {
		return nil, err
	}
	return s.GetCourse(ctx, id)
}

// DeleteCourse deletes a course
func (s *Store) DeleteCourse(ctx context.Context, id string) error {
	_, err := s.Exec(ctx, "DELETE FROM courses WHERE id = ?", id)
	return err
}
