// Package planner serves the per-user planner resources and the derived
// dashboard and progress views.
package planner

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shreywv2007/StudyFlow/internal/logger"
	"github.com/shreywv2007/StudyFlow/internal/models"
	"github.com/shreywv2007/StudyFlow/internal/respond"
	"github.com/shreywv2007/StudyFlow/internal/store"
)

// Store is the persistence the planner handlers need.
type Store interface {
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)
	CreateTask(ctx context.Context, userID, title, dueDate, priority, taskType string) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, req models.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	ListCourses(ctx context.Context, userID string) ([]models.Course, error)
	CreateCourse(ctx context.Context, userID, name, code string, credits int, grade *string) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, req models.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error

	ListStudySessions(ctx context.Context, userID string) ([]models.StudySession, error)
	CreateStudySession(ctx context.Context, userID, subject string, duration int, date, notes string) (*models.StudySession, error)
	DeleteStudySession(ctx context.Context, id string) error

	ListNotes(ctx context.Context, userID string) ([]models.Note, error)
	CreateNote(ctx context.Context, userID, subject, title, content, tags string) (*models.Note, error)
	UpdateNote(ctx context.Context, id string, req models.UpdateNoteRequest) (*models.Note, error)
	DeleteNote(ctx context.Context, id string) error

	ListWellbeing(ctx context.Context, userID string) ([]models.WellbeingEntry, error)
	CreateWellbeing(ctx context.Context, e models.WellbeingEntry) (*models.WellbeingEntry, error)

	GetSettings(ctx context.Context, userID string) (*models.Settings, error)
	UpsertSettings(ctx context.Context, userID string, req models.UpdateSettingsRequest) (*models.Settings, error)
}

// Handler holds the planner HTTP handlers.
type Handler struct {
	store Store
	log   *logger.Logger
	now   func() time.Time
}

func NewHandler(s Store, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{store: s, log: log, now: time.Now}
}

// WithClock overrides the time source used for "today".
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// storeFailure maps a store error onto a response.
func (h *Handler) storeFailure(w http.ResponseWriter, r *http.Request, what string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respond.Error(w, http.StatusNotFound, what+" not found")
	case store.IsConstraint(err):
		respond.Error(w, http.StatusConflict, what+" conflicts with an existing record")
	default:
		h.log.Error("store failure", "resource", what, "path", r.URL.Path, "error", err)
		respond.Error(w, http.StatusInternalServerError, err.Error())
	}
}
