package planner

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shreywv2007/StudyFlow/internal/models"
	"github.com/shreywv2007/StudyFlow/internal/respond"
	"github.com/shreywv2007/StudyFlow/internal/stats"
)

func (h *Handler) ListWellbeing(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListWellbeing(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.storeFailure(w, r, "wellbeing entry", err)
		return
	}
	respond.JSON(w, http.StatusOK, entries)
}

// CreateWellbeing records today's check-in.
func (h *Handler) CreateWellbeing(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWellbeingRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		respond.Error(w, http.StatusBadRequest, "userId is required")
		return
	}
	mood, ok := models.ParseMood(req.Mood)
	if !ok {
		respond.Error(w, http.StatusBadRequest, "mood must be one of great, good, okay, tough")
		return
	}
	entry := models.WellbeingEntry{
		UserID:      req.UserID,
		Date:        stats.Day(h.now()),
		Mood:        mood,
		SleepHours:  models.DefaultSleepHours,
		StressLevel: models.DefaultStressLevel,
		Notes:       req.Notes,
	}
	if req.SleepHours != nil {
		entry.SleepHours = *req.SleepHours
	}
	if req.StressLevel != nil {
		entry.StressLevel = *req.StressLevel
	}
	if entry.SleepHours < 0 || entry.SleepHours > 24 {
		respond.Error(w, http.StatusBadRequest, "sleepHours must be between 0 and 24")
		return
	}
	if entry.StressLevel < models.MinStressLevel || entry.StressLevel > models.MaxStressLevel {
		respond.Error(w, http.StatusBadRequest, "stressLevel must be between 1 and 10")
		return
	}

	saved, err := h.store.CreateWellbeing(r.Context(), entry)
	if err != nil {
		h.storeFailure(w, r, "wellbeing entry", err)
		return
	}
	respond.JSON(w, http.StatusOK, saved)
}
