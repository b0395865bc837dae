package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/service"
	"github.com/colejunck1/Task-Tracker/pkg/response"
)

// ScheduleGroupHandler serves the schedule group endpoints.
type ScheduleGroupHandler struct {
	groupSvc service.ScheduleGroupService
}

// NewScheduleGroupHandler creates a ScheduleGroupHandler.
func NewScheduleGroupHandler(groupSvc service.ScheduleGroupService) *ScheduleGroupHandler {
	return &ScheduleGroupHandler{groupSvc: groupSvc}
}

// List returns all schedule groups.
// GET /api/v1/schedule-groups
func (h *ScheduleGroupHandler) List(c *gin.Context) {
	groups, err := h.groupSvc.List(c.Request.Context())
	if err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.OK(c, gin.H{"list": groups})
}

// Get returns one schedule group.
// GET /api/v1/schedule-groups/:id
func (h *ScheduleGroupHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	group, err := h.groupSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.OK(c, group)
}

// Create adds a schedule group.
// POST /api/v1/schedule-groups
func (h *ScheduleGroupHandler) Create(c *gin.Context) {
	var req dto.CreateScheduleGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	group, err := h.groupSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.Created(c, group)
}

// Update edits a schedule group.
// PUT /api/v1/schedule-groups/:id
func (h *ScheduleGroupHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.UpdateScheduleGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	group, err := h.groupSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.OK(c, group)
}

// Delete removes one schedule group.
// DELETE /api/v1/schedule-groups/:id
func (h *ScheduleGroupHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.groupSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.OK(c, nil)
}

// BulkDelete removes the listed schedule groups.
// POST /api/v1/schedule-groups/bulk-delete
func (h *ScheduleGroupHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	if err := h.groupSvc.BulkDelete(c.Request.Context(), &req); err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.OK(c, nil)
}

// Import bulk-creates schedule groups from a workbook.
// POST /api/v1/schedule-groups/import  (multipart, field "file")
func (h *ScheduleGroupHandler) Import(c *gin.Context) {
	file, _, ok := formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.groupSvc.ImportWorkbook(c.Request.Context(), file)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *ScheduleGroupHandler) handleGroupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleGroupNotFound):
		response.NotFound(c, 15001, "schedule group not found")
	case errors.Is(err, service.ErrImportInvalidFile):
		response.BadRequest(c, 13002, "could not read workbook")
	case errors.Is(err, service.ErrImportNoRows):
		response.BadRequest(c, 13003, "workbook has no data rows")
	default:
		response.InternalError(c)
	}
}
