package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/model"
	"github.com/colejunck1/Task-Tracker/internal/repository"
)

// ── task instance business errors ──

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskInvalidStatus = errors.New("invalid task status")
	ErrTaskInvalidDate   = errors.New("invalid task date")
)

// TaskService manages the per-hull task instances. Instances are created by
// order ingestion and only mutated afterwards, never deleted.
type TaskService interface {
	List(ctx context.Context, req *dto.TaskListRequest) ([]dto.TaskResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.TaskResponse, error)

	// UpdateStatus moves a task to any status of the closed set, optionally
	// recording who completed it.
	UpdateStatus(ctx context.Context, id int64, req *dto.UpdateTaskStatusRequest) (*dto.TaskResponse, error)

	// UpdateDates sets or clears the start/end dates. An empty string
	// clears; a missing field is untouched. Last write wins.
	UpdateDates(ctx context.Context, id int64, req *dto.UpdateTaskDatesRequest) (*dto.TaskResponse, error)
}

type taskService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTaskService creates a TaskService instance.
func NewTaskService(repo *repository.Repository, logger *zap.Logger) TaskService {
	return &taskService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *taskService) List(ctx context.Context, req *dto.TaskListRequest) ([]dto.TaskResponse, error) {
	tasks, err := s.repo.TaskPerHull.List(ctx, strings.TrimSpace(req.Station), strings.TrimSpace(req.HullNumber))
	if err != nil {
		s.logger.Error("list tasks failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		result = append(result, toTaskResponse(&tasks[i]))
	}
	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *taskService) GetByID(ctx context.Context, id int64) (*dto.TaskResponse, error) {
	t, err := s.findTask(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toTaskResponse(t)
	return &resp, nil
}

// ────────────────────── UpdateStatus ──────────────────────

func (s *taskService) UpdateStatus(ctx context.Context, id int64, req *dto.UpdateTaskStatusRequest) (*dto.TaskResponse, error) {
	if !model.ValidStatus(req.Status) {
		return nil, ErrTaskInvalidStatus
	}
	t, err := s.findTask(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Status = req.Status
	if req.CompletedBy != nil {
		t.CompletedBy = req.CompletedBy
	}

	if err := s.repo.TaskPerHull.Update(ctx, t); err != nil {
		s.logger.Error("update task status failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	resp := toTaskResponse(t)
	return &resp, nil
}

// ────────────────────── UpdateDates ──────────────────────

func (s *taskService) UpdateDates(ctx context.Context, id int64, req *dto.UpdateTaskDatesRequest) (*dto.TaskResponse, error) {
	t, err := s.findTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StartDate != nil {
		d, err := parseOptionalDate(*req.StartDate)
		if err != nil {
			return nil, ErrTaskInvalidDate
		}
		t.StartDate = d
	}
	if req.EndDate != nil {
		d, err := parseOptionalDate(*req.EndDate)
		if err != nil {
			return nil, ErrTaskInvalidDate
		}
		t.EndDate = d
	}

	if err := s.repo.TaskPerHull.Update(ctx, t); err != nil {
		s.logger.Error("update task dates failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	resp := toTaskResponse(t)
	return &resp, nil
}

// ── internal helpers ──

func (s *taskService) findTask(ctx context.Context, id int64) (*model.TaskPerHull, error) {
	t, err := s.repo.TaskPerHull.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("get task failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return t, nil
}

// parseOptionalDate parses an ISO date, nil for the empty string.
func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func toTaskResponse(t *model.TaskPerHull) dto.TaskResponse {
	return dto.TaskResponse{
		ID:            t.ID,
		HullNumber:    t.HullNumber,
		Model:         t.Model,
		Station:       t.Station,
		TaskName:      t.TaskName,
		StartDate:     formatOptionalDate(t.StartDate),
		EndDate:       formatOptionalDate(t.EndDate),
		Status:        t.Status,
		CompletedBy:   t.CompletedBy,
		Applicable:    t.Applicable,
		ScheduleGroup: t.ScheduleGroup,
		TaskDataID:    t.TaskDataID,
	}
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
