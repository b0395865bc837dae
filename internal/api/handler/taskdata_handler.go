package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/service"
	"github.com/colejunck1/Task-Tracker/pkg/response"
)

// TaskDataHandler serves the master task catalog endpoints.
type TaskDataHandler struct {
	taskSvc service.TaskDataService
}

// NewTaskDataHandler creates a TaskDataHandler.
func NewTaskDataHandler(taskSvc service.TaskDataService) *TaskDataHandler {
	return &TaskDataHandler{taskSvc: taskSvc}
}

// List returns master tasks with optional station/model filters.
// GET /api/v1/task-data?station=&model=
func (h *TaskDataHandler) List(c *gin.Context) {
	var req dto.TaskDataListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	tasks, err := h.taskSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleTaskDataError(c, err)
		return
	}

	response.OK(c, gin.H{"list": tasks})
}

// Get returns one master task.
// GET /api/v1/task-data/:id
func (h *TaskDataHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	task, err := h.taskSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleTaskDataError(c, err)
		return
	}

	response.OK(c, task)
}

// Create adds a master task.
// POST /api/v1/task-data
func (h *TaskDataHandler) Create(c *gin.Context) {
	var req dto.CreateTaskDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	task, err := h.taskSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTaskDataError(c, err)
		return
	}

	response.Created(c, task)
}

// Update edits a master task.
// PUT /api/v1/task-data/:id
func (h *TaskDataHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	task, err := h.taskSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleTaskDataError(c, err)
		return
	}

	response.OK(c, task)
}

// Delete removes a master task.
// DELETE /api/v1/task-data/:id
func (h *TaskDataHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.taskSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleTaskDataError(c, err)
		return
	}

	response.OK(c, nil)
}

// Import runs the tolerant bulk importer.
// POST /api/v1/task-data/import  (multipart, field "file")
func (h *TaskDataHandler) Import(c *gin.Context) {
	file, _, ok := formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.taskSvc.ImportWorkbook(c.Request.Context(), file)
	if err != nil {
		h.handleTaskDataError(c, err)
		return
	}

	response.OK(c, result)
}

// PreviewImport annotates a workbook's rows without writing.
// POST /api/v1/task-data/import/preview  (multipart, field "file")
func (h *TaskDataHandler) PreviewImport(c *gin.Context) {
	file, _, ok := formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	preview, err := h.taskSvc.PreviewValidatedImport(c.Request.Context(), file)
	if err != nil {
		h.handleTaskDataError(c, err)
		return
	}

	response.OK(c, preview)
}

// CommitImport commits a validated workbook in one transaction.
// POST /api/v1/task-data/import/commit  (multipart, field "file")
func (h *TaskDataHandler) CommitImport(c *gin.Context) {
	file, _, ok := formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.taskSvc.CommitValidatedImport(c.Request.Context(), file)
	if err != nil {
		h.handleTaskDataError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *TaskDataHandler) handleTaskDataError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTaskDataNotFound):
		response.NotFound(c, 13001, "master task not found")
	case errors.Is(err, service.ErrImportInvalidFile):
		response.BadRequest(c, 13002, "could not read workbook")
	case errors.Is(err, service.ErrImportNoRows):
		response.BadRequest(c, 13003, "workbook has no data rows")
	case errors.Is(err, service.ErrImportHasErrors):
		response.BadRequest(c, 13004, "import rejected: rows failed validation")
	default:
		response.InternalError(c)
	}
}
