package planner

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shreywv2007/StudyFlow/internal/models"
	"github.com/shreywv2007/StudyFlow/internal/respond"
	"github.com/shreywv2007/StudyFlow/internal/stats"
)

// ListTasks returns a user's tasks ordered by due date. On list routes the
// {id} segment is the owning user's id.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.ListTasks(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.storeFailure(w, r, "task", err)
		return
	}
	respond.JSON(w, http.StatusOK, tasks)
}

// CreateTask adds a task; priority and type default to medium/task.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.Title == "" {
		respond.Error(w, http.StatusBadRequest, "userId and title are required")
		return
	}
	if !stats.ValidDate(req.DueDate) {
		respond.Error(w, http.StatusBadRequest, "dueDate must be YYYY-MM-DD")
		return
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if req.Type == "" {
		req.Type = models.TaskTypeTask
	}
	if !models.ValidPriority(req.Priority) || !models.ValidTaskType(req.Type) {
		respond.Error(w, http.StatusBadRequest, "invalid priority or type")
		return
	}

	task, err := h.store.CreateTask(r.Context(), req.UserID, req.Title, req.DueDate, req.Priority, req.Type)
	if err != nil {
		h.storeFailure(w, r, "task", err)
		return
	}
	respond.JSON(w, http.StatusOK, task)
}

// UpdateTask changes only the fields present in the body.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTaskRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	switch {
	case req.Title != nil && *req.Title == "":
		respond.Error(w, http.StatusBadRequest, "title cannot be empty")
		return
	case req.DueDate != nil && !stats.ValidDate(*req.DueDate):
		respond.Error(w, http.StatusBadRequest, "dueDate must be YYYY-MM-DD")
		return
	case req.Priority != nil && !models.ValidPriority(*req.Priority):
		respond.Error(w, http.StatusBadRequest, "invalid priority")
		return
	case req.Type != nil && !models.ValidTaskType(*req.Type):
		respond.Error(w, http.StatusBadRequest, "invalid type")
		return
	}

	task, err := h.store.UpdateTask(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.storeFailure(w, r, "task", err)
		return
	}
	respond.JSON(w, http.StatusOK, task)
}

// DeleteTask removes a task.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteTask(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.storeFailure(w, r, "task", err)
		return
	}
	respond.Success(w)
}
