package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shreywv2007/StudyFlow/internal/models"
)

const noteColumns = "id, user_id, subject, title, content, tags, created_at, updated_at"

// noteTimeLayout is millisecond ISO-8601 in UTC; it sorts lexically.
const noteTimeLayout = "2006-01-02T15:04:05.000Z"

func noteFromRow(r Row) models.Note {
	return models.Note{
		ID:        r.String("id"),
		UserID:    r.String("user_id"),
		Subject:   r.String("subject"),
		Title:     r.String("title"),
		Content:   r.String("content"),
		Tags:      r.String("tags"),
		CreatedAt: r.String("created_at"),
		UpdatedAt: r.String("updated_at"),
	}
}

func noteTimestamp() string {
	return time.Now().UTC().Format(noteTimeLayout)
}

// CreateNote creates a new note
func (s *Store) CreateNote(ctx context.Context, userID, subject, title, content, tags string) (*models.Note, error) {
	id := uuid.NewString()
	now := noteTimestamp()
	_, err := s.Exec(ctx, `
		INSERT INTO notes (id, user_id, subject, title, content, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, userID, subject, title, content, tags, now, now)
	if err != nil {
		return nil, err
	}
	return s.GetNote(ctx, id)
}

// GetNote retrieves a note by ID
func (s *Store) GetNote(ctx context.Context, id string) (*models.Note, error) {
	row, err := s.FetchOne(ctx, "SELECT "+noteColumns+" FROM notes WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	n := noteFromRow(row)
	return &n, nil
}

// ListNotes returns a user's notes, most recently edited first
func (s *Store) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	rows, err := s.FetchAll(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE user_id = ?
		ORDER BY updated_at DESC, rowid DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	notes := make([]models.Note, 0, len(rows))
	for _, r := range rows {
		notes = append(notes, noteFromRow(r))
	}
	return notes, nil
}

// UpdateNote applies the non-nil fields of req. updated_at is refreshed on
// every call, even when no field changes.
func (s *Store) UpdateNote(ctx context.Context, id string, req models.UpdateNoteRequest) (*models.Note, error) {
	var a Assignments
	a.Set("updated_at", noteTimestamp())
	if req.Subject != nil {
		a.Set("subject", *req.Subject)
	}
	if req.Title != nil {
		a.Set("title", *req.Title)
	}
	if req.Content != nil {
		a.Set("content", *req.Content)
	}
	if req.Tags != nil {
		a.Set("tags", *req.Tags)
	}
	if err := s.update(ctx, "notes", "id", id, a); err != nil {
		return nil, err
	}
	return s.GetNote(ctx, id)
}

// DeleteNote deletes a note
func (s *Store) DeleteNote(ctx context.Context, id string) error {
	_, err := s.Exec(ctx, "DELETE FROM notes WHERE id = ?", id)
	return err
}
