package planner

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shreywv2007/StudyFlow/internal/respond"
	"github.com/shreywv2007/StudyFlow/internal/stats"
)

// Dashboard aggregates tasks, courses and sessions into the summary view.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	ctx := r.Context()

	tasks, err := h.store.ListTasks(ctx, userID)
	if err != nil {
		h.storeFailure(w, r, "dashboard", err)
		return
	}
	courses, err := h.store.ListCourses(ctx, userID)
	if err != nil {
		h.storeFailure(w, r, "dashboard", err)
		return
	}
	sessions, err := h.store.ListStudySessions(ctx, userID)
	if err != nil {
		h.storeFailure(w, r, "dashboard", err)
		return
	}

	respond.JSON(w, http.StatusOK, stats.BuildDashboard(tasks, courses, sessions, h.now()))
}

// Progress reports study time per subject, recent sessions and a wellbeing summary.
func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	ctx := r.Context()

	sessions, err := h.store.ListStudySessions(ctx, userID)
	if err != nil {
		h.storeFailure(w, r, "progress", err)
		return
	}
	entries, err := h.store.ListWellbeing(ctx, userID)
	if err != nil {
		h.storeFailure(w, r, "progress", err)
		return
	}

	respond.JSON(w, http.StatusOK, stats.BuildProgress(sessions, entries))
}
