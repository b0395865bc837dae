package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/service"
	"github.com/colejunck1/Task-Tracker/pkg/response"
)

// HeaderHandler serves the per-model header line endpoints.
type HeaderHandler struct {
	headerSvc service.HeaderService
}

// NewHeaderHandler creates a HeaderHandler.
func NewHeaderHandler(headerSvc service.HeaderService) *HeaderHandler {
	return &HeaderHandler{headerSvc: headerSvc}
}

// List returns a model's known header lines.
// GET /api/v1/models/:id/headers
func (h *HeaderHandler) List(c *gin.Context) {
	modelID, ok := paramID(c)
	if !ok {
		return
	}

	headers, err := h.headerSvc.ListByModel(c.Request.Context(), modelID)
	if err != nil {
		h.handleHeaderError(c, err)
		return
	}
	response.OK(c, gin.H{"list": headers})
}

// Add adds one header line to a model.
// POST /api/v1/models/:id/headers
func (h *HeaderHandler) Add(c *gin.Context) {
	modelID, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.HeaderTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	header, err := h.headerSvc.Add(c.Request.Context(), modelID, &req)
	if err != nil {
		h.handleHeaderError(c, err)
		return
	}
	response.Created(c, header)
}

// Update edits one header line.
// PUT /api/v1/headers/:id
func (h *HeaderHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.HeaderTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	header, err := h.headerSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleHeaderError(c, err)
		return
	}
	response.OK(c, header)
}

// Delete removes one header line.
// DELETE /api/v1/headers/:id
func (h *HeaderHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.headerSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleHeaderError(c, err)
		return
	}
	response.OK(c, nil)
}

// Import bulk-creates header lines for a model.
// POST /api/v1/models/:id/headers/import  (multipart, field "file")
func (h *HeaderHandler) Import(c *gin.Context) {
	modelID, ok := paramID(c)
	if !ok {
		return
	}

	file, _, ok := formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.headerSvc.ImportWorkbook(c.Request.Context(), modelID, file)
	if err != nil {
		h.handleHeaderError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *HeaderHandler) handleHeaderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrModelNotFound):
		response.NotFound(c, 16001, "model not found")
	case errors.Is(err, service.ErrHeaderNotFound):
		response.NotFound(c, 16201, "header line not found")
	case errors.Is(err, service.ErrImportInvalidFile):
		response.BadRequest(c, 13002, "could not read workbook")
	case errors.Is(err, service.ErrImportNoRows):
		response.BadRequest(c, 13003, "workbook has no data rows")
	default:
		response.InternalError(c)
	}
}
