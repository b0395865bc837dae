package handler

import (
	"bytes"
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/colejunck1/Task-Tracker/internal/service"
	"github.com/colejunck1/Task-Tracker/pkg/response"
)

// ExportHandler serves the workbook download endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportTaskData downloads the master task catalog.
// GET /api/v1/export/task-data
func (h *ExportHandler) ExportTaskData(c *gin.Context) {
	h.serveExport(c, h.exportSvc.ExportTaskData)
}

// ExportStations downloads the station list.
// GET /api/v1/export/stations
func (h *ExportHandler) ExportStations(c *gin.Context) {
	h.serveExport(c, h.exportSvc.ExportStations)
}

// ExportScheduleGroups downloads the schedule groups.
// GET /api/v1/export/schedule-groups
func (h *ExportHandler) ExportScheduleGroups(c *gin.Context) {
	h.serveExport(c, h.exportSvc.ExportScheduleGroups)
}

// ExportDoNotShow downloads the do-not-show list.
// GET /api/v1/export/do-not-show-options
func (h *ExportHandler) ExportDoNotShow(c *gin.Context) {
	h.serveExport(c, h.exportSvc.ExportDoNotShow)
}

// ExportTasksPerHull downloads the task instances.
// GET /api/v1/export/tasks-per-hull
func (h *ExportHandler) ExportTasksPerHull(c *gin.Context) {
	h.serveExport(c, h.exportSvc.ExportTasksPerHull)
}

// ExportProductionSchedule downloads the schedule grid.
// GET /api/v1/export/production-schedule
func (h *ExportHandler) ExportProductionSchedule(c *gin.Context) {
	h.serveExport(c, h.exportSvc.ExportProductionSchedule)
}

// Template downloads a header-only importer template.
// GET /api/v1/export/templates/:kind
func (h *ExportHandler) Template(c *gin.Context) {
	buf, filename, err := h.exportSvc.Template(c.Param("kind"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	writeWorkbookDownload(c, buf.Bytes(), filename, xlsxContentType)
}

// TaskCSVTemplate downloads the csv variant of the task import template.
// GET /api/v1/export/templates/tasks/csv
func (h *ExportHandler) TaskCSVTemplate(c *gin.Context) {
	buf, filename, err := h.exportSvc.TaskCSVTemplate()
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	writeWorkbookDownload(c, buf.Bytes(), filename, "text/csv")
}

// serveExport runs an export and streams the workbook back.
func (h *ExportHandler) serveExport(c *gin.Context, export func(context.Context) (*bytes.Buffer, string, error)) {
	buf, filename, err := export(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	writeWorkbookDownload(c, buf.Bytes(), filename, xlsxContentType)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportUnknownKind):
		response.BadRequest(c, 20001, "unknown template kind")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
