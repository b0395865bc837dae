package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/service"
	"github.com/colejunck1/Task-Tracker/pkg/response"
)

// TaskHandler serves the per-hull task instance endpoints.
type TaskHandler struct {
	taskSvc service.TaskService
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(taskSvc service.TaskService) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc}
}

// List returns task instances, optionally filtered by station or hull.
// GET /api/v1/tasks?station=&hull_number=
func (h *TaskHandler) List(c *gin.Context) {
	var req dto.TaskListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	tasks, err := h.taskSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}
	response.OK(c, gin.H{"list": tasks})
}

// Get returns one task instance.
// GET /api/v1/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	task, err := h.taskSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}
	response.OK(c, task)
}

// UpdateStatus moves a task to a new status.
// PUT /api/v1/tasks/:id/status
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	task, err := h.taskSvc.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}
	response.OK(c, task)
}

// UpdateDates sets or clears a task's start/end dates.
// PUT /api/v1/tasks/:id/dates
func (h *TaskHandler) UpdateDates(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	task, err := h.taskSvc.UpdateDates(c.Request.Context(), id, &req)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}
	response.OK(c, task)
}

func (h *TaskHandler) handleTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		response.NotFound(c, 17001, "task not found")
	case errors.Is(err, service.ErrTaskInvalidStatus):
		response.BadRequest(c, 17002, "invalid task status")
	case errors.Is(err, service.ErrTaskInvalidDate):
		response.BadRequest(c, 17003, "invalid task date")
	default:
		response.InternalError(c)
	}
}
