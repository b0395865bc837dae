package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/service"
	"github.com/colejunck1/Task-Tracker/pkg/response"
)

// OrderHandler serves the boat order endpoints.
type OrderHandler struct {
	orderSvc service.OrderService
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(orderSvc service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// Upload ingests a production order PDF.
// POST /api/v1/boat-orders/upload  (multipart, field "file")
func (h *OrderHandler) Upload(c *gin.Context) {
	file, header, ok := formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, 10001, "could not read uploaded file")
		return
	}

	result, err := h.orderSvc.Ingest(c.Request.Context(), header.Filename, data)
	if err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.Created(c, result)
}

// List returns the ingested orders, newest revision first.
// GET /api/v1/boat-orders?search=
func (h *OrderHandler) List(c *gin.Context) {
	var req dto.BoatOrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	orders, err := h.orderSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.OK(c, gin.H{"list": orders})
}

// Get returns one order with its option lines and the model's header lines.
// GET /api/v1/boat-orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	detail, err := h.orderSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.OK(c, detail)
}

// GetPDF returns the public retrieval URL for the stored order document.
// GET /api/v1/boat-orders/:id/pdf
func (h *OrderHandler) GetPDF(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	result, err := h.orderSvc.PDFURL(c.Request.Context(), id)
	if err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *OrderHandler) handleOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		response.NotFound(c, 12001, "boat order not found")
	case errors.Is(err, service.ErrOrderFileName):
		response.BadRequest(c, 12002, "failed to parse hull number or revision date from file name")
	case errors.Is(err, service.ErrOrderUnreadablePDF):
		response.BadRequest(c, 12003, "could not read PDF content")
	case errors.Is(err, service.ErrOrderEmptyFile):
		response.BadRequest(c, 12004, "uploaded file is empty")
	default:
		response.InternalError(c)
	}
}
