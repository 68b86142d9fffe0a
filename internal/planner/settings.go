package planner

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shreywv2007/StudyFlow/internal/models"
	"github.com/shreywv2007/StudyFlow/internal/respond"
	"github.com/shreywv2007/StudyFlow/internal/store"
)

// GetSettings answers {} for a user who never saved settings.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.GetSettings(r.Context(), chi.URLParam(r, "userId"))
	if errors.Is(err, store.ErrNotFound) {
		respond.JSON(w, http.StatusOK, struct{}{})
		return
	}
	if err != nil {
		h.storeFailure(w, r, "settings", err)
		return
	}
	respond.JSON(w, http.StatusOK, settings)
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Theme != nil && *req.Theme == "" {
		respond.Error(w, http.StatusBadRequest, "theme cannot be empty")
		return
	}

	settings, err := h.store.UpsertSettings(r.Context(), chi.URLParam(r, "userId"), req)
	if err != nil {
		h.storeFailure(w, r, "settings", err)
		return
	}
	respond.JSON(w, http.StatusOK, settings)
}
