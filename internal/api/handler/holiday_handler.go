package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/service"
	"github.com/colejunck1/Task-Tracker/pkg/response"
)

// HolidayHandler serves the company holiday endpoints.
type HolidayHandler struct {
	holidaySvc service.HolidayService
}

// NewHolidayHandler creates a HolidayHandler.
func NewHolidayHandler(holidaySvc service.HolidayService) *HolidayHandler {
	return &HolidayHandler{holidaySvc: holidaySvc}
}

// List returns the holiday calendar in date order.
// GET /api/v1/holidays
func (h *HolidayHandler) List(c *gin.Context) {
	holidays, err := h.holidaySvc.List(c.Request.Context())
	if err != nil {
		h.handleHolidayError(c, err)
		return
	}
	response.OK(c, gin.H{"list": holidays})
}

// Get returns one holiday.
// GET /api/v1/holidays/:id
func (h *HolidayHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	holiday, err := h.holidaySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleHolidayError(c, err)
		return
	}
	response.OK(c, holiday)
}

// Create adds a holiday.
// POST /api/v1/holidays
func (h *HolidayHandler) Create(c *gin.Context) {
	var req dto.CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	holiday, err := h.holidaySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleHolidayError(c, err)
		return
	}
	response.Created(c, holiday)
}

// Update edits a holiday.
// PUT /api/v1/holidays/:id
func (h *HolidayHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.UpdateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	holiday, err := h.holidaySvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleHolidayError(c, err)
		return
	}
	response.OK(c, holiday)
}

// Delete removes a holiday.
// DELETE /api/v1/holidays/:id
func (h *HolidayHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.holidaySvc.Delete(c.Request.Context(), id); err != nil {
		h.handleHolidayError(c, err)
		return
	}
	response.OK(c, nil)
}

// ImportICS imports holidays from an uploaded iCalendar file.
// POST /api/v1/holidays/import-ics  (multipart, field "file")
func (h *HolidayHandler) ImportICS(c *gin.Context) {
	file, _, ok := formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.holidaySvc.ImportICS(c.Request.Context(), file)
	if err != nil {
		h.handleHolidayError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *HolidayHandler) handleHolidayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHolidayNotFound):
		response.NotFound(c, 18001, "holiday not found")
	case errors.Is(err, service.ErrHolidayBadDate):
		response.BadRequest(c, 18002, "invalid holiday date")
	case errors.Is(err, service.ErrHolidayBadICSFile):
		response.BadRequest(c, 18003, "could not parse calendar file")
	default:
		response.InternalError(c)
	}
}
