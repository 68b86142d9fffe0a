package models

const DefaultTheme = "light"

// Settings is the per-user preferences row, created on first write.
type Settings struct {
	UserID        string `json:"user_id"`
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	StudyReminder bool   `json:"study_reminder"`
	BreakReminder bool   `json:"break_reminder"`
}

// UpdateSettingsRequest is the JSON body for PUT /api/settings/{userId}.
type UpdateSettingsRequest struct {
	Theme         *string `json:"theme"`
	Notifications *bool   `json:"notifications"`
	StudyReminder *bool   `json:"studyReminder"`
	BreakReminder *bool   `json:"breakReminder"`
}
