package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/colejunck1/Task-Tracker/internal/model"
	"github.com/colejunck1/Task-Tracker/internal/repository"
)

// ── export business errors ──

var (
	ErrExportGenerateFail = errors.New("failed to generate export file")
	ErrExportUnknownKind  = errors.New("unknown template kind")
)

// Template kinds, one per bulk importer.
const (
	TemplateTasks          = "tasks"
	TemplateStations       = "stations"
	TemplateScheduleGroups = "schedule_groups"
	TemplateModelOptions   = "model_options"
	TemplateHeaders        = "headers"
	TemplateDoNotShow      = "do_not_show"
)

// ExportService produces workbook downloads. Export column orders match the
// corresponding importer, so an exported file re-imports unchanged. Buffers
// come back with a suggested filename; the handler sets the response
// headers.
type ExportService interface {
	ExportTaskData(ctx context.Context) (*bytes.Buffer, string, error)
	ExportStations(ctx context.Context) (*bytes.Buffer, string, error)
	ExportScheduleGroups(ctx context.Context) (*bytes.Buffer, string, error)
	ExportDoNotShow(ctx context.Context) (*bytes.Buffer, string, error)
	ExportTasksPerHull(ctx context.Context) (*bytes.Buffer, string, error)
	ExportProductionSchedule(ctx context.Context) (*bytes.Buffer, string, error)

	// Template returns a header-only workbook for the named importer.
	Template(kind string) (*bytes.Buffer, string, error)

	// TaskCSVTemplate is the csv variant of the validated task importer
	// template.
	TaskCSVTemplate() (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── ExportTaskData ──────────────────────

func (s *exportService) ExportTaskData(ctx context.Context) (*bytes.Buffer, string, error) {
	tasks, err := s.repo.TaskData.List(ctx, "", nil)
	if err != nil {
		s.logger.Error("list master tasks failed", zap.Error(err))
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		rows = append(rows, []interface{}{
			derefInt64(t.Model), t.Station, t.TaskName,
			derefFloat(t.LaborHours), derefString(t.AssociatedOptions),
			derefInt64(t.ScheduleGroup), derefInt(t.DurationDays),
		})
	}
	return s.writeWorkbook("Tasks", taskImportColumns, rows, "tasks.xlsx")
}

// ────────────────────── ExportStations ──────────────────────

func (s *exportService) ExportStations(ctx context.Context) (*bytes.Buffer, string, error) {
	stations, err := s.repo.Station.List(ctx)
	if err != nil {
		s.logger.Error("list stations failed", zap.Error(err))
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(stations))
	for i := range stations {
		rows = append(rows, []interface{}{stations[i].Name})
	}
	return s.writeWorkbook("Stations", []string{"name"}, rows, "stations.xlsx")
}

// ────────────────────── ExportScheduleGroups ──────────────────────

func (s *exportService) ExportScheduleGroups(ctx context.Context) (*bytes.Buffer, string, error) {
	groups, err := s.repo.ScheduleGroup.List(ctx)
	if err != nil {
		s.logger.Error("list schedule groups failed", zap.Error(err))
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(groups))
	for i := range groups {
		g := &groups[i]
		rows = append(rows, []interface{}{
			g.ScheduleGroup, derefInt(g.DaysOffset), g.OffsetType, g.Station,
		})
	}
	return s.writeWorkbook("Schedule Groups", scheduleGroupImportColumns, rows, "schedule_groups.xlsx")
}

// ────────────────────── ExportDoNotShow ──────────────────────

func (s *exportService) ExportDoNotShow(ctx context.Context) (*bytes.Buffer, string, error) {
	options, err := s.repo.DoNotShowOption.List(ctx)
	if err != nil {
		s.logger.Error("list do-not-show entries failed", zap.Error(err))
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(options))
	for i := range options {
		rows = append(rows, []interface{}{options[i].OptionText})
	}
	return s.writeWorkbook("Do Not Show", []string{"option_text"}, rows, "do_not_show_options.xlsx")
}

// ────────────────────── ExportTasksPerHull ──────────────────────

var taskPerHullExportColumns = []string{
	"hull_number", "model", "station", "task_name", "start_date",
	"end_date", "status", "completed_by", "applicable", "schedule_group",
}

func (s *exportService) ExportTasksPerHull(ctx context.Context) (*bytes.Buffer, string, error) {
	tasks, err := s.repo.TaskPerHull.List(ctx, "", "")
	if err != nil {
		s.logger.Error("list tasks failed", zap.Error(err))
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		start, end := "", ""
		if t.StartDate != nil {
			start = t.StartDate.Format("2006-01-02")
		}
		if t.EndDate != nil {
			end = t.EndDate.Format("2006-01-02")
		}
		rows = append(rows, []interface{}{
			t.HullNumber, derefInt64(t.Model), t.Station, t.TaskName,
			start, end, t.Status, derefString(t.CompletedBy),
			t.Applicable, derefInt64(t.ScheduleGroup),
		})
	}
	return s.writeWorkbook("Tasks Per Hull", taskPerHullExportColumns, rows, "tasks_per_hull.xlsx")
}

// ────────────────────── ExportProductionSchedule ──────────────────────

func (s *exportService) ExportProductionSchedule(ctx context.Context) (*bytes.Buffer, string, error) {
	slots, err := s.repo.ProductionSchedule.List(ctx)
	if err != nil {
		s.logger.Error("list schedule slots failed", zap.Error(err))
		return nil, "", err
	}

	header := append([]string{"slot_number", "takt", "boat_model", "hull_number"},
		model.StationDateColumns...)

	rows := make([][]interface{}, 0, len(slots))
	for i := range slots {
		slot := &slots[i]
		row := []interface{}{
			slot.SlotNumber, derefInt(slot.Takt),
			derefInt64(slot.BoatModel), slot.HullNumber,
		}
		for _, col := range model.StationDateColumns {
			if d := slot.StationDate(col); d != nil {
				row = append(row, d.Format("2006-01-02"))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return s.writeWorkbook("Production Schedule", header, rows, "production_schedule.xlsx")
}

// ────────────────────── Template ──────────────────────

func (s *exportService) Template(kind string) (*bytes.Buffer, string, error) {
	var header []string
	var name string

	switch kind {
	case TemplateTasks:
		header, name = taskImportColumns, "tasks_template.xlsx"
	case TemplateStations:
		header, name = []string{"name"}, "stations_template.xlsx"
	case TemplateScheduleGroups:
		header, name = scheduleGroupImportColumns, "schedule_groups_template.xlsx"
	case TemplateModelOptions:
		header, name = []string{"option_text"}, "model_options_template.xlsx"
	case TemplateHeaders:
		header, name = []string{"header_text"}, "headers_template.xlsx"
	case TemplateDoNotShow:
		header, name = []string{"option_text"}, "do_not_show_template.xlsx"
	default:
		return nil, "", ErrExportUnknownKind
	}
	return s.writeWorkbook("Template", header, nil, name)
}

// ────────────────────── TaskCSVTemplate ──────────────────────

func (s *exportService) TaskCSVTemplate() (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(taskImportColumns); err != nil {
		return nil, "", ErrExportGenerateFail
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", ErrExportGenerateFail
	}
	return &buf, "tasks_template.csv", nil
}

// ── workbook writing ──

// writeWorkbook renders a single-sheet workbook with a bold header row.
func (s *exportService) writeWorkbook(sheet string, header []string, rows [][]interface{}, filename string) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", ErrExportGenerateFail
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
	})

	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, 18)
	}

	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write workbook failed", zap.String("file", filename), zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, filename, nil
}

// ── cell value helpers ──

func derefInt64(v *int64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func derefInt(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func derefFloat(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
