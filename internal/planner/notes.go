package planner

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shreywv2007/StudyFlow/internal/models"
	"github.com/shreywv2007/StudyFlow/internal/respond"
)

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.store.ListNotes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.storeFailure(w, r, "note", err)
		return
	}
	respond.JSON(w, http.StatusOK, notes)
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNoteRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.Subject == "" || req.Title == "" {
		respond.Error(w, http.StatusBadRequest, "userId, subject, and title are required")
		return
	}

	note, err := h.store.CreateNote(r.Context(), req.UserID, req.Subject, req.Title, req.Content, req.Tags)
	if err != nil {
		h.storeFailure(w, r, "note", err)
		return
	}
	respond.JSON(w, http.StatusOK, note)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateNoteRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if (req.Subject != nil && *req.Subject == "") || (req.Title != nil && *req.Title == "") {
		respond.Error(w, http.StatusBadRequest, "subject and title cannot be empty")
		return
	}

	note, err := h.store.UpdateNote(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.storeFailure(w, r, "note", err)
		return
	}
	respond.JSON(w, http.StatusOK, note)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteNote(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.storeFailure(w, r, "note", err)
		return
	}
	respond.Success(w)
}
