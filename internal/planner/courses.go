package planner

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shreywv2007/StudyFlow/internal/models"
	"github.com/shreywv2007/StudyFlow/internal/respond"
)

func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.store.ListCourses(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.storeFailure(w, r, "course", err)
		return
	}
	respond.JSON(w, http.StatusOK, courses)
}

// CreateCourse adds a course. Any grade string is accepted; unknown grades
// simply earn no points in the GPA.
func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.Name == "" {
		respond.Error(w, http.StatusBadRequest, "userId and name are required")
		return
	}
	credits := models.DefaultCredits
	if req.Credits != nil {
		credits = *req.Credits
	}
	if credits < 0 {
		respond.Error(w, http.StatusBadRequest, "credits cannot be negative")
		return
	}
	grade := req.Grade
	if grade != nil && *grade == "" {
		grade = nil
	}

	course, err := h.store.CreateCourse(r.Context(), req.UserID, req.Name, req.Code, credits, grade)
	if err != nil {
		h.storeFailure(w, r, "course", err)
		return
	}
	respond.JSON(w, http.StatusOK, course)
}

func (h *Handler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCourseRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name != nil && *req.Name == "" {
		respond.Error(w, http.StatusBadRequest, "name cannot be empty")
		return
	}
	if req.Credits != nil && *req.Credits < 0 {
		respond.Error(w, http.StatusBadRequest, "credits cannot be negative")
		return
	}

	course, err := h.store.UpdateCourse(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.storeFailure(w, r, "course", err)
		return
	}
	respond.JSON(w, http.StatusOK, course)
}

func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCourse(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.storeFailure(w, r, "course", err)
		return
	}
	respond.Success(w)
}
