package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/shreywv2007/StudyFlow/internal/models"
)

// WellbeingHistory is how many check-ins ListWellbeing returns.
const WellbeingHistory = 30

const wellbeingColumns = "id, user_id, date, mood, sleep_hours, stress_level, notes"

func wellbeingFromRow(r Row) models.WellbeingEntry {
	return models.WellbeingEntry{
		ID:          r.String("id"),
		UserID:      r.String("user_id"),
		Date:        r.String("date"),
		Mood:        r.String("mood"),
		SleepHours:  r.Float("sleep_hours"),
		StressLevel: int(r.Int("stress_level")),
		Notes:       r.String("notes"),
	}
}

// CreateWellbeing records a check-in
func (s *Store) CreateWellbeing(ctx context.Context, e models.WellbeingEntry) (*models.WellbeingEntry, error) {
	id := uuid.NewString()
	_, err := s.Exec(ctx, `
		INSERT INTO wellbeing (id, user_id, date, mood, sleep_hours, stress_level, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, e.UserID, e.Date, e.Mood, e.SleepHours, e.StressLevel, e.Notes)
	if err != nil {
		return nil, err
	}

	row, err := s.FetchOne(ctx, "SELECT "+wellbeingColumns+" FROM wellbeing WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	out := wellbeingFromRow(row)
	return &out, nil
}

// ListWellbeing returns the latest check-ins, newest first
func (s *Store) ListWellbeing(ctx context.Context, userID string) ([]models.WellbeingEntry, error) {
	rows, err := s.FetchAll(ctx, `
		SELECT `+wellbeingColumns+`
		FROM wellbeing
		WHERE user_id = ?
		ORDER BY date DESC, rowid DESC
		LIMIT ?
	`, userID, WellbeingHistory)
	if err != nil {
		return nil, err
	}
	entries := make([]models.WellbeingEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, wellbeingFromRow(r))
	}
	return entries, nil
}
