package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/service"
	"github.com/colejunck1/Task-Tracker/pkg/response"
)

// OptionHandler serves the per-model option catalog and the global
// do-not-show list.
type OptionHandler struct {
	optionSvc service.OptionService
}

// NewOptionHandler creates an OptionHandler.
func NewOptionHandler(optionSvc service.OptionService) *OptionHandler {
	return &OptionHandler{optionSvc: optionSvc}
}

// ── per-model catalog ──

// ListModelOptions returns a model's catalog options.
// GET /api/v1/models/:id/options
func (h *OptionHandler) ListModelOptions(c *gin.Context) {
	modelID, ok := paramID(c)
	if !ok {
		return
	}

	options, err := h.optionSvc.ListModelOptions(c.Request.Context(), modelID)
	if err != nil {
		h.handleOptionError(c, err)
		return
	}
	response.OK(c, gin.H{"list": options})
}

// AddModelOption adds one catalog option to a model.
// POST /api/v1/models/:id/options
func (h *OptionHandler) AddModelOption(c *gin.Context) {
	modelID, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.OptionTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	option, err := h.optionSvc.AddModelOption(c.Request.Context(), modelID, &req)
	if err != nil {
		h.handleOptionError(c, err)
		return
	}
	response.Created(c, option)
}

// UpdateModelOption edits one catalog option.
// PUT /api/v1/model-options/:id
func (h *OptionHandler) UpdateModelOption(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.OptionTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	option, err := h.optionSvc.UpdateModelOption(c.Request.Context(), id, &req)
	if err != nil {
		h.handleOptionError(c, err)
		return
	}
	response.OK(c, option)
}

// DeleteModelOption removes one catalog option.
// DELETE /api/v1/model-options/:id
func (h *OptionHandler) DeleteModelOption(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.optionSvc.DeleteModelOption(c.Request.Context(), id); err != nil {
		h.handleOptionError(c, err)
		return
	}
	response.OK(c, nil)
}

// ImportModelOptions bulk-creates catalog options for a model.
// POST /api/v1/models/:id/options/import  (multipart, field "file")
func (h *OptionHandler) ImportModelOptions(c *gin.Context) {
	modelID, ok := paramID(c)
	if !ok {
		return
	}

	file, _, ok := formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.optionSvc.ImportModelOptions(c.Request.Context(), modelID, file)
	if err != nil {
		h.handleOptionError(c, err)
		return
	}
	response.OK(c, result)
}

// ── global do-not-show list ──

// ListDoNotShow returns the suppressed option lines.
// GET /api/v1/do-not-show-options
func (h *OptionHandler) ListDoNotShow(c *gin.Context) {
	options, err := h.optionSvc.ListDoNotShow(c.Request.Context())
	if err != nil {
		h.handleOptionError(c, err)
		return
	}
	response.OK(c, gin.H{"list": options})
}

// AddDoNotShow adds one suppressed line.
// POST /api/v1/do-not-show-options
func (h *OptionHandler) AddDoNotShow(c *gin.Context) {
	var req dto.OptionTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	option, err := h.optionSvc.AddDoNotShow(c.Request.Context(), &req)
	if err != nil {
		h.handleOptionError(c, err)
		return
	}
	response.Created(c, option)
}

// UpdateDoNotShow edits one suppressed line.
// PUT /api/v1/do-not-show-options/:id
func (h *OptionHandler) UpdateDoNotShow(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.OptionTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	option, err := h.optionSvc.UpdateDoNotShow(c.Request.Context(), id, &req)
	if err != nil {
		h.handleOptionError(c, err)
		return
	}
	response.OK(c, option)
}

// DeleteDoNotShow removes one suppressed line.
// DELETE /api/v1/do-not-show-options/:id
func (h *OptionHandler) DeleteDoNotShow(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.optionSvc.DeleteDoNotShow(c.Request.Context(), id); err != nil {
		h.handleOptionError(c, err)
		return
	}
	response.OK(c, nil)
}

// ImportDoNotShow bulk-creates suppressed lines.
// POST /api/v1/do-not-show-options/import  (multipart, field "file")
func (h *OptionHandler) ImportDoNotShow(c *gin.Context) {
	file, _, ok := formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.optionSvc.ImportDoNotShow(c.Request.Context(), file)
	if err != nil {
		h.handleOptionError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *OptionHandler) handleOptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrModelNotFound):
		response.NotFound(c, 16001, "model not found")
	case errors.Is(err, service.ErrModelOptionNotFound):
		response.NotFound(c, 16101, "model option not found")
	case errors.Is(err, service.ErrDoNotShowOptionNotFound):
		response.NotFound(c, 16102, "do-not-show entry not found")
	case errors.Is(err, service.ErrImportInvalidFile):
		response.BadRequest(c, 13002, "could not read workbook")
	case errors.Is(err, service.ErrImportNoRows):
		response.BadRequest(c, 13003, "workbook has no data rows")
	default:
		response.InternalError(c)
	}
}
