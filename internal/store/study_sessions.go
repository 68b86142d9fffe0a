package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/shreywv2007/StudyFlow/internal/models"
)

const sessionColumns = "id, user_id, subject, duration, date, notes, created_at"

func sessionFromRow(r Row) models.StudySession {
	return models.StudySession{
		ID:        r.String("id"),
		UserID:    r.String("user_id"),
		Subject:   r.String("subject"),
		Duration:  int(r.Int("duration")),
		Date:      r.String("date"),
		Notes:     r.String("notes"),
		CreatedAt: r.String("created_at"),
	}
}

// CreateStudySession records a study session. Sessions are immutable afterwards.
func (s *Store) CreateStudySession(ctx context.Context, userID, subject string, duration int, date, notes string) (*models.StudySession, error) {
	id := uuid.NewString()
	_, err := s.Exec(ctx, `
		INSERT INTO study_sessions (id, user_id, subject, duration, date, notes) VALUES (?, ?, ?, ?, ?, ?)
	`, id, userID, subject, duration, date, notes)
	if err != nil {
		return nil, err
	}
	return s.GetStudySession(ctx, id)
}

// GetStudySession retrieves a session by ID
func (s *Store) GetStudySession(ctx context.Context, id string) (*models.StudySession, error) {
	row, err := s.FetchOne(ctx, "SELECT "+sessionColumns+" FROM study_sessions WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	ss := sessionFromRow(row)
	return &ss, nil
}

// ListStudySessions returns a user's sessions, most recent date first
func (s *Store) ListStudySessions(ctx context.Context, userID string) ([]models.StudySession, error) {
	rows, err := s.FetchAll(ctx, `
		SELECT `+sessionColumns+`
		FROM study_sessions
		WHERE user_id = ?
		ORDER BY date DESC, created_at DESC, rowid DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	sessions := make([]models.StudySession, 0, len(rows))
	for _, r := range rows {
		sessions = append(sessions, sessionFromRow(r))
	}
	return sessions, nil
}

// DeleteStudySession deletes a session
func (s *Store) DeleteStudySession(ctx context.Context, id string) error {
	_, err := s.Exec(ctx, "DELETE FROM study_sessions WHERE id = ?", id)
	return err
}
