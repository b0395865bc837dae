package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/service"
	"github.com/colejunck1/Task-Tracker/pkg/response"
)

// ModelHandler serves the boat model endpoints.
type ModelHandler struct {
	modelSvc service.ModelService
}

// NewModelHandler creates a ModelHandler.
func NewModelHandler(modelSvc service.ModelService) *ModelHandler {
	return &ModelHandler{modelSvc: modelSvc}
}

// List returns all models.
// GET /api/v1/models
func (h *ModelHandler) List(c *gin.Context) {
	models, err := h.modelSvc.List(c.Request.Context())
	if err != nil {
		h.handleModelError(c, err)
		return
	}
	response.OK(c, gin.H{"list": models})
}

// Get returns one model.
// GET /api/v1/models/:id
func (h *ModelHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	m, err := h.modelSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleModelError(c, err)
		return
	}
	response.OK(c, m)
}

// Create adds a model.
// POST /api/v1/models
func (h *ModelHandler) Create(c *gin.Context) {
	var req dto.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	m, err := h.modelSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleModelError(c, err)
		return
	}
	response.Created(c, m)
}

// Update renames a model.
// PUT /api/v1/models/:id
func (h *ModelHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.UpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	m, err := h.modelSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleModelError(c, err)
		return
	}
	response.OK(c, m)
}

// Delete removes a model.
// DELETE /api/v1/models/:id
func (h *ModelHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.modelSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleModelError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *ModelHandler) handleModelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrModelNotFound):
		response.NotFound(c, 16001, "model not found")
	default:
		response.InternalError(c)
	}
}
