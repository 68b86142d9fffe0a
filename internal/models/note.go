package models

import "strings"

// Note is a free-form study note. Tags is a comma-delimited list.
type Note struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Subject   string `json:"subject"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Tags      string `json:"tags"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// TagList splits Tags, dropping blanks.
func (n Note) TagList() []string {
	var tags []string
	for _, t := range strings.Split(n.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// CreateNoteRequest is the JSON body for POST /api/notes.
type CreateNoteRequest struct {
	UserID  string `json:"userId"`
	Subject string `json:"subject"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    string `json:"tags"`
}

// UpdateNoteRequest is the JSON body for PUT /api/notes/{id}.
type UpdateNoteRequest struct {
	Subject *string `json:"subject"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Tags    *string `json:"tags"`
}
