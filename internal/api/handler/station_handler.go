package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/service"
	"github.com/colejunck1/Task-Tracker/pkg/response"
)

// StationHandler serves the station endpoints.
type StationHandler struct {
	stationSvc service.StationService
}

// NewStationHandler creates a StationHandler.
func NewStationHandler(stationSvc service.StationService) *StationHandler {
	return &StationHandler{stationSvc: stationSvc}
}

// List returns stations in presentation order.
// GET /api/v1/stations
func (h *StationHandler) List(c *gin.Context) {
	stations, err := h.stationSvc.List(c.Request.Context())
	if err != nil {
		h.handleStationError(c, err)
		return
	}
	response.OK(c, gin.H{"list": stations})
}

// Get returns one station.
// GET /api/v1/stations/:id
func (h *StationHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	station, err := h.stationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleStationError(c, err)
		return
	}
	response.OK(c, station)
}

// Create adds a station.
// POST /api/v1/stations
func (h *StationHandler) Create(c *gin.Context) {
	var req dto.CreateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	station, err := h.stationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleStationError(c, err)
		return
	}
	response.Created(c, station)
}

// Update edits a station.
// PUT /api/v1/stations/:id
func (h *StationHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.UpdateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	station, err := h.stationSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleStationError(c, err)
		return
	}
	response.OK(c, station)
}

// Delete removes a station.
// DELETE /api/v1/stations/:id
func (h *StationHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.stationSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleStationError(c, err)
		return
	}
	response.OK(c, nil)
}

// Reorder persists a new presentation order.
// PUT /api/v1/stations/reorder
func (h *StationHandler) Reorder(c *gin.Context) {
	var req dto.ReorderStationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	stations, err := h.stationSvc.Reorder(c.Request.Context(), &req)
	if err != nil {
		h.handleStationError(c, err)
		return
	}
	response.OK(c, gin.H{"list": stations})
}

// Import bulk-creates stations from a single-column workbook.
// POST /api/v1/stations/import  (multipart, field "file")
func (h *StationHandler) Import(c *gin.Context) {
	file, _, ok := formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.stationSvc.ImportWorkbook(c.Request.Context(), file)
	if err != nil {
		h.handleStationError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *StationHandler) handleStationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStationNotFound):
		response.NotFound(c, 14001, "station not found")
	case errors.Is(err, service.ErrStationReorderEmpty):
		response.BadRequest(c, 14002, "reorder requires at least one station id")
	case errors.Is(err, service.ErrImportInvalidFile):
		response.BadRequest(c, 13002, "could not read workbook")
	case errors.Is(err, service.ErrImportNoRows):
		response.BadRequest(c, 13003, "workbook has no data rows")
	default:
		response.InternalError(c)
	}
}
