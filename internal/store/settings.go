package store

import (
	"context"
	"strings"

	"github.com/shreywv2007/StudyFlow/internal/models"
)

const settingsColumns = "user_id, theme, notifications, study_reminder, break_reminder"

func settingsFromRow(r Row) *models.Settings {
	return &models.Settings{
		UserID:        r.String("user_id"),
		Theme:         r.String("theme"),
		Notifications: r.Bool("notifications"),
		StudyReminder: r.Bool("study_reminder"),
		BreakReminder: r.Bool("break_reminder"),
	}
}

// GetSettings returns ErrNotFound until the user's first settings write
func (s *Store) GetSettings(ctx context.Context, userID string) (*models.Settings, error) {
	row, err := s.FetchOne(ctx, "SELECT "+settingsColumns+" FROM settings WHERE user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return settingsFromRow(row), nil
}

// UpsertSettings creates the settings row on first write and afterwards
// updates only the supplied fields. It is a single statement, so two
// concurrent partial writes cannot clobber each other's fields.
func (s *Store) UpsertSettings(ctx context.Context, userID string, req models.UpdateSettingsRequest) (*models.Settings, error) {
	theme := models.DefaultTheme
	notifications, studyReminder, breakReminder := true, true, true

	var updates []string
	if req.Theme != nil {
		theme = *req.Theme
		updates = append(updates, "theme = excluded.theme")
	}
	if req.Notifications != nil {
		notifications = *req.Notifications
		updates = append(updates, "notifications = excluded.notifications")
	}
	if req.StudyReminder != nil {
		studyReminder = *req.StudyReminder
		updates = append(updates, "study_reminder = excluded.study_reminder")
	}
	if req.BreakReminder != nil {
		breakReminder = *req.BreakReminder
		updates = append(updates, "break_reminder = excluded.break_reminder")
	}

	conflict := "DO NOTHING"
	if len(updates) > 0 {
		conflict = "DO UPDATE SET " + strings.Join(updates, ", ")
	}

	_, err := s.Exec(ctx, `
		INSERT INTO settings (`+settingsColumns+`) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) `+conflict,
		userID, theme, boolInt(notifications), boolInt(studyReminder), boolInt(breakReminder))
	if err != nil {
		return nil, err
	}
	return s.GetSettings(ctx, userID)
}
