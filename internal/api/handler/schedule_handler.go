package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/service"
	"github.com/colejunck1/Task-Tracker/pkg/response"
)

// ScheduleHandler serves the production schedule endpoints.
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// List returns the schedule grid in slot order.
// GET /api/v1/production-schedule
func (h *ScheduleHandler) List(c *gin.Context) {
	slots, err := h.scheduleSvc.List(c.Request.Context())
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, gin.H{"list": slots})
}

// Get returns one slot row.
// GET /api/v1/production-schedule/:id
func (h *ScheduleHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	slot, err := h.scheduleSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, slot)
}

// Create adds a slot row.
// POST /api/v1/production-schedule
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req dto.CreateScheduleSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	slot, err := h.scheduleSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.Created(c, slot)
}

// UpdateCell writes one cell of a slot row.
// PUT /api/v1/production-schedule/:id/cell
func (h *ScheduleHandler) UpdateCell(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.UpdateScheduleCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	slot, err := h.scheduleSvc.UpdateCell(c.Request.Context(), id, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, slot)
}

// Delete removes a slot row.
// DELETE /api/v1/production-schedule/:id
func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.scheduleSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, nil)
}

// AutoSchedule fills a slot's station dates by walking the station order.
// POST /api/v1/production-schedule/:id/auto-schedule
func (h *ScheduleHandler) AutoSchedule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.AutoScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	slot, err := h.scheduleSvc.AutoSchedule(c.Request.Context(), id, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, slot)
}

func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleSlotNotFound):
		response.NotFound(c, 19001, "schedule slot not found")
	case errors.Is(err, service.ErrScheduleBadColumn):
		response.BadRequest(c, 19002, "unknown schedule column")
	case errors.Is(err, service.ErrScheduleBadDate):
		response.BadRequest(c, 19003, "invalid schedule date")
	case errors.Is(err, service.ErrScheduleBadStation):
		response.BadRequest(c, 19004, "unknown start station")
	default:
		response.InternalError(c)
	}
}
