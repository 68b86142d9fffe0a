package planner

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shreywv2007/StudyFlow/internal/models"
	"github.com/shreywv2007/StudyFlow/internal/respond"
	"github.com/shreywv2007/StudyFlow/internal/stats"
)

func (h *Handler) ListStudySessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.ListStudySessions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.storeFailure(w, r, "study session", err)
		return
	}
	respond.JSON(w, http.StatusOK, sessions)
}

// CreateStudySession logs time studied. Duration defaults to one pomodoro
// and date to today.
func (h *Handler) CreateStudySession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudySessionRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.Subject == "" {
		respond.Error(w, http.StatusBadRequest, "userId and subject are required")
		return
	}
	duration := models.DefaultSessionMinutes
	if req.Duration != nil {
		duration = *req.Duration
	}
	if duration <= 0 {
		respond.Error(w, http.StatusBadRequest, "duration must be positive")
		return
	}
	date := req.Date
	if date == "" {
		date = stats.Day(h.now())
	}
	if !stats.ValidDate(date) {
		respond.Error(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	session, err := h.store.CreateStudySession(r.Context(), req.UserID, req.Subject, duration, date, req.Notes)
	if err != nil {
		h.storeFailure(w, r, "study session", err)
		return
	}
	respond.JSON(w, http.StatusOK, session)
}

func (h *Handler) DeleteStudySession(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteStudySession(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.storeFailure(w, r, "study session", err)
		return
	}
	respond.Success(w)
}
