package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/model"
	"github.com/colejunck1/Task-Tracker/internal/repository"
)

// ── master task business errors ──

var (
	ErrTaskDataNotFound = errors.New("master task not found")
	ErrImportHasErrors  = errors.New("import rejected: rows failed validation")
	ErrImportNoRows     = errors.New("workbook has no data rows")
)

// TaskDataService manages the master task catalog.
type TaskDataService interface {
	Create(ctx context.Context, req *dto.CreateTaskDataRequest) (*dto.TaskDataResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.TaskDataResponse, error)
	List(ctx context.Context, req *dto.TaskDataListRequest) ([]dto.TaskDataResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTaskDataRequest) (*dto.TaskDataResponse, error)
	Delete(ctx context.Context, id int64) error

	// ImportWorkbook is the tolerant importer: fixed column order, numeric
	// cells coerced to zero, rows without a task name dropped, everything
	// else inserted unconditionally.
	ImportWorkbook(ctx context.Context, r io.Reader) (*dto.BulkImportResponse, error)

	// PreviewValidatedImport annotates each row of a header-keyed workbook
	// with its validation errors without writing anything.
	PreviewValidatedImport(ctx context.Context, r io.Reader) (*dto.ValidatedImportPreviewResponse, error)

	// CommitValidatedImport re-validates the workbook and inserts all rows
	// in one transaction; any invalid row blocks the whole commit.
	CommitValidatedImport(ctx context.Context, r io.Reader) (*dto.BulkImportResponse, error)
}

type taskDataService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTaskDataService creates a TaskDataService instance.
func NewTaskDataService(repo *repository.Repository, logger *zap.Logger) TaskDataService {
	return &taskDataService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *taskDataService) Create(ctx context.Context, req *dto.CreateTaskDataRequest) (*dto.TaskDataResponse, error) {
	t := &model.TaskData{
		Model:             req.Model,
		Station:           strings.TrimSpace(req.Station),
		TaskName:          strings.TrimSpace(req.TaskName),
		LaborHours:        req.LaborHours,
		AssociatedOptions: req.AssociatedOptions,
		ScheduleGroup:     req.ScheduleGroup,
		DurationDays:      req.DurationDays,
	}
	if err := s.repo.TaskData.Create(ctx, t); err != nil {
		s.logger.Error("create master task failed", zap.Error(err))
		return nil, err
	}
	return toTaskDataResponse(t), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *taskDataService) GetByID(ctx context.Context, id int64) (*dto.TaskDataResponse, error) {
	t, err := s.repo.TaskData.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskDataNotFound
		}
		s.logger.Error("get master task failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toTaskDataResponse(t), nil
}

// ────────────────────── List ──────────────────────

func (s *taskDataService) List(ctx context.Context, req *dto.TaskDataListRequest) ([]dto.TaskDataResponse, error) {
	tasks, err := s.repo.TaskData.List(ctx, strings.TrimSpace(req.Station), req.Model)
	if err != nil {
		s.logger.Error("list master tasks failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.TaskDataResponse, 0, len(tasks))
	for i := range tasks {
		result = append(result, *toTaskDataResponse(&tasks[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *taskDataService) Update(ctx context.Context, id int64, req *dto.UpdateTaskDataRequest) (*dto.TaskDataResponse, error) {
	t, err := s.repo.TaskData.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskDataNotFound
		}
		s.logger.Error("get master task failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.Model != nil {
		t.Model = req.Model
	}
	if req.Station != nil {
		t.Station = strings.TrimSpace(*req.Station)
	}
	if req.TaskName != nil {
		t.TaskName = strings.TrimSpace(*req.TaskName)
	}
	if req.LaborHours != nil {
		t.LaborHours = req.LaborHours
	}
	if req.AssociatedOptions != nil {
		t.AssociatedOptions = req.AssociatedOptions
	}
	if req.ScheduleGroup != nil {
		t.ScheduleGroup = req.ScheduleGroup
	}
	if req.DurationDays != nil {
		t.DurationDays = req.DurationDays
	}

	if err := s.repo.TaskData.Update(ctx, t); err != nil {
		s.logger.Error("update master task failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toTaskDataResponse(t), nil
}

// ────────────────────── Delete ──────────────────────

func (s *taskDataService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.TaskData.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskDataNotFound
		}
		return err
	}
	if err := s.repo.TaskData.Delete(ctx, id); err != nil {
		s.logger.Error("delete master task failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// ImportWorkbook: tolerant bulk importer
// ═══════════════════════════════════════════════════════════
//
// Fixed column order, first worksheet, header row dropped:
//
//	model | station | task_name | labor_hours | associated_options |
//	schedule_group | duration_days
//
// Strings are trimmed. Numeric cells that are empty or unparseable become
// zero. A row without a task name is skipped; nothing else is rejected.

// taskImportColumns is the fixed import/export column order for master
// tasks. Exports and templates reuse it so a downloaded file re-imports
// unchanged.
var taskImportColumns = []string{
	"model", "station", "task_name", "labor_hours",
	"associated_options", "schedule_group", "duration_days",
}

func (s *taskDataService) ImportWorkbook(ctx context.Context, r io.Reader) (*dto.BulkImportResponse, error) {
	rows, err := readWorkbookRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrImportNoRows
	}

	var tasks []model.TaskData
	skipped := 0
	for _, row := range rows[1:] {
		taskName := cellAt(row, 2)
		if taskName == "" {
			skipped++
			continue
		}

		modelCode := coerceInt64(cellAt(row, 0))
		labor := coerceFloat(cellAt(row, 3))
		group := coerceInt64(cellAt(row, 5))
		duration := int(coerceInt64(cellAt(row, 6)))

		assoc := cellAt(row, 4)
		t := model.TaskData{
			Model:         &modelCode,
			Station:       cellAt(row, 1),
			TaskName:      taskName,
			LaborHours:    &labor,
			ScheduleGroup: &group,
			DurationDays:  &duration,
		}
		if assoc != "" {
			t.AssociatedOptions = &assoc
		}
		tasks = append(tasks, t)
	}

	if err := s.repo.TaskData.BatchCreate(ctx, tasks); err != nil {
		s.logger.Error("bulk insert master tasks failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("master tasks imported",
		zap.Int("inserted", len(tasks)), zap.Int("skipped", skipped))
	return &dto.BulkImportResponse{Inserted: len(tasks), Skipped: skipped}, nil
}

// ═══════════════════════════════════════════════════════════
// Validated importer: preview and commit
// ═══════════════════════════════════════════════════════════
//
// Header-keyed rows. Every row's station must name an existing station and
// its model must name an existing model (mapped to the model's id). Numeric
// cells that are empty or unparseable become NULL. Any annotated error
// blocks the commit; preview never writes.

func (s *taskDataService) PreviewValidatedImport(ctx context.Context, r io.Reader) (*dto.ValidatedImportPreviewResponse, error) {
	preview, _, err := s.validateWorkbook(ctx, r)
	return preview, err
}

func (s *taskDataService) CommitValidatedImport(ctx context.Context, r io.Reader) (*dto.BulkImportResponse, error) {
	preview, tasks, err := s.validateWorkbook(ctx, r)
	if err != nil {
		return nil, err
	}
	if preview.HasErrors {
		return nil, ErrImportHasErrors
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.repo.WithTx(tx).TaskData.BatchCreate(ctx, tasks); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("validated import insert failed", zap.Error(err))
		return nil, err
	}
	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			return nil, err
		}
	}

	s.logger.Info("validated master task import committed", zap.Int("inserted", len(tasks)))
	return &dto.BulkImportResponse{Inserted: len(tasks)}, nil
}

func (s *taskDataService) validateWorkbook(ctx context.Context, r io.Reader) (*dto.ValidatedImportPreviewResponse, []model.TaskData, error) {
	rows, err := readWorkbookRows(r)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, ErrImportNoRows
	}
	cols := headerIndex(rows[0])

	stations, err := s.repo.Station.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	stationSet := make(map[string]bool, len(stations))
	for i := range stations {
		stationSet[strings.ToLower(stations[i].Name)] = true
	}

	models, err := s.repo.Model.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	modelIDs := make(map[string]int64, len(models))
	for i := range models {
		modelIDs[strings.ToLower(models[i].Name)] = models[i].ID
	}

	col := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok {
			return ""
		}
		return cellAt(row, idx)
	}

	preview := &dto.ValidatedImportPreviewResponse{}
	var tasks []model.TaskData

	for n, row := range rows[1:] {
		rowNum := n + 2 // 1-based, after the header row
		p := dto.ValidatedImportPreviewRow{
			Row:               rowNum,
			Model:             col(row, "model"),
			Station:           col(row, "station"),
			TaskName:          col(row, "task_name"),
			LaborHours:        col(row, "labor_hours"),
			AssociatedOptions: col(row, "associated_options"),
			ScheduleGroup:     col(row, "schedule_group"),
			DurationDays:      col(row, "duration_days"),
		}

		t := model.TaskData{
			Station:           p.Station,
			TaskName:          p.TaskName,
			LaborHours:        coerceFloatPtr(p.LaborHours),
			AssociatedOptions: coerceStringPtr(p.AssociatedOptions),
			ScheduleGroup:     coerceInt64Ptr(p.ScheduleGroup),
			DurationDays:      coerceIntPtr(p.DurationDays),
		}

		if p.TaskName == "" {
			p.Errors = append(p.Errors, dto.ImportRowError{
				Row: rowNum, Column: "task_name", Reason: "task name is required",
			})
		}
		if p.Station == "" || !stationSet[strings.ToLower(p.Station)] {
			p.Errors = append(p.Errors, dto.ImportRowError{
				Row: rowNum, Column: "station",
				Reason: fmt.Sprintf("unknown station %q", p.Station),
			})
		}
		if p.Model == "" {
			p.Errors = append(p.Errors, dto.ImportRowError{
				Row: rowNum, Column: "model", Reason: "model is required",
			})
		} else if id, ok := modelIDs[strings.ToLower(p.Model)]; ok {
			t.Model = &id
		} else {
			p.Errors = append(p.Errors, dto.ImportRowError{
				Row: rowNum, Column: "model",
				Reason: fmt.Sprintf("unknown model %q", p.Model),
			})
		}

		if len(p.Errors) > 0 {
			preview.HasErrors = true
		} else {
			tasks = append(tasks, t)
		}
		preview.Rows = append(preview.Rows, p)
	}

	return preview, tasks, nil
}

// ── cell coercion helpers ──

// coerceInt64 turns a cell into an integer, zero when empty or unparseable.
func coerceInt64(cell string) int64 {
	n, err := strconv.ParseInt(cell, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// coerceFloat turns a cell into a float, zero when empty or unparseable.
func coerceFloat(cell string) float64 {
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0
	}
	return f
}

func coerceInt64Ptr(cell string) *int64 {
	n, err := strconv.ParseInt(cell, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func coerceIntPtr(cell string) *int {
	n, err := strconv.Atoi(cell)
	if err != nil {
		return nil
	}
	return &n
}

func coerceFloatPtr(cell string) *float64 {
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}
	return &f
}

func coerceStringPtr(cell string) *string {
	if cell == "" {
		return nil
	}
	return &cell
}

// ── response mapping ──

func toTaskDataResponse(t *model.TaskData) *dto.TaskDataResponse {
	return &dto.TaskDataResponse{
		ID:                t.ID,
		Model:             t.Model,
		Station:           t.Station,
		TaskName:          t.TaskName,
		LaborHours:        t.LaborHours,
		AssociatedOptions: t.AssociatedOptions,
		ScheduleGroup:     t.ScheduleGroup,
		DurationDays:      t.DurationDays,
	}
}
