package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/model"
	"github.com/colejunck1/Task-Tracker/internal/repository"
)

// ── option business errors ──

var (
	ErrModelOptionNotFound     = errors.New("model option not found")
	ErrDoNotShowOptionNotFound = errors.New("do-not-show entry not found")
)

// OptionService manages the per-model option catalog and the global
// do-not-show list consulted at order ingestion.
type OptionService interface {
	// per-model catalog
	ListModelOptions(ctx context.Context, modelID int64) ([]dto.ModelOptionResponse, error)
	AddModelOption(ctx context.Context, modelID int64, req *dto.OptionTextRequest) (*dto.ModelOptionResponse, error)
	UpdateModelOption(ctx context.Context, id int64, req *dto.OptionTextRequest) (*dto.ModelOptionResponse, error)
	DeleteModelOption(ctx context.Context, id int64) error
	ImportModelOptions(ctx context.Context, modelID int64, r io.Reader) (*dto.BulkImportResponse, error)

	// global do-not-show list
	ListDoNotShow(ctx context.Context) ([]dto.DoNotShowOptionResponse, error)
	AddDoNotShow(ctx context.Context, req *dto.OptionTextRequest) (*dto.DoNotShowOptionResponse, error)
	UpdateDoNotShow(ctx context.Context, id int64, req *dto.OptionTextRequest) (*dto.DoNotShowOptionResponse, error)
	DeleteDoNotShow(ctx context.Context, id int64) error
	ImportDoNotShow(ctx context.Context, r io.Reader) (*dto.BulkImportResponse, error)
}

type optionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewOptionService creates an OptionService instance.
func NewOptionService(repo *repository.Repository, logger *zap.Logger) OptionService {
	return &optionService{repo: repo, logger: logger}
}

// ────────────────────── model options ──────────────────────

func (s *optionService) ListModelOptions(ctx context.Context, modelID int64) ([]dto.ModelOptionResponse, error) {
	if _, err := s.repo.Model.GetByID(ctx, modelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}
	options, err := s.repo.ModelOption.ListByModel(ctx, modelID)
	if err != nil {
		s.logger.Error("list model options failed", zap.Int64("model_id", modelID), zap.Error(err))
		return nil, err
	}
	result := make([]dto.ModelOptionResponse, 0, len(options))
	for i := range options {
		result = append(result, toModelOptionResponse(&options[i]))
	}
	return result, nil
}

func (s *optionService) AddModelOption(ctx context.Context, modelID int64, req *dto.OptionTextRequest) (*dto.ModelOptionResponse, error) {
	if _, err := s.repo.Model.GetByID(ctx, modelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}
	o := &model.ModelOption{ModelID: modelID, OptionText: strings.TrimSpace(req.OptionText)}
	if err := s.repo.ModelOption.Create(ctx, o); err != nil {
		s.logger.Error("create model option failed", zap.Int64("model_id", modelID), zap.Error(err))
		return nil, err
	}
	resp := toModelOptionResponse(o)
	return &resp, nil
}

func (s *optionService) UpdateModelOption(ctx context.Context, id int64, req *dto.OptionTextRequest) (*dto.ModelOptionResponse, error) {
	o, err := s.repo.ModelOption.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelOptionNotFound
		}
		s.logger.Error("get model option failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	o.OptionText = strings.TrimSpace(req.OptionText)
	if err := s.repo.ModelOption.Update(ctx, o); err != nil {
		s.logger.Error("update model option failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	resp := toModelOptionResponse(o)
	return &resp, nil
}

func (s *optionService) DeleteModelOption(ctx context.Context, id int64) error {
	if _, err := s.repo.ModelOption.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrModelOptionNotFound
		}
		return err
	}
	if err := s.repo.ModelOption.Delete(ctx, id); err != nil {
		s.logger.Error("delete model option failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *optionService) ImportModelOptions(ctx context.Context, modelID int64, r io.Reader) (*dto.BulkImportResponse, error) {
	if _, err := s.repo.Model.GetByID(ctx, modelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}

	rows, err := readWorkbookRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrImportNoRows
	}

	var options []model.ModelOption
	skipped := 0
	for _, row := range rows[1:] {
		text := cellAt(row, 0)
		if text == "" {
			skipped++
			continue
		}
		options = append(options, model.ModelOption{ModelID: modelID, OptionText: text})
	}

	if err := s.repo.ModelOption.BatchCreate(ctx, options); err != nil {
		s.logger.Error("bulk insert model options failed", zap.Int64("model_id", modelID), zap.Error(err))
		return nil, err
	}
	return &dto.BulkImportResponse{Inserted: len(options), Skipped: skipped}, nil
}

// ────────────────────── do-not-show list ──────────────────────

func (s *optionService) ListDoNotShow(ctx context.Context) ([]dto.DoNotShowOptionResponse, error) {
	options, err := s.repo.DoNotShowOption.List(ctx)
	if err != nil {
		s.logger.Error("list do-not-show entries failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.DoNotShowOptionResponse, 0, len(options))
	for i := range options {
		result = append(result, dto.DoNotShowOptionResponse{
			ID:         options[i].ID,
			OptionText: options[i].OptionText,
		})
	}
	return result, nil
}

func (s *optionService) AddDoNotShow(ctx context.Context, req *dto.OptionTextRequest) (*dto.DoNotShowOptionResponse, error) {
	o := &model.DoNotShowOption{OptionText: strings.TrimSpace(req.OptionText)}
	if err := s.repo.DoNotShowOption.Create(ctx, o); err != nil {
		s.logger.Error("create do-not-show entry failed", zap.Error(err))
		return nil, err
	}
	return &dto.DoNotShowOptionResponse{ID: o.ID, OptionText: o.OptionText}, nil
}

func (s *optionService) UpdateDoNotShow(ctx context.Context, id int64, req *dto.OptionTextRequest) (*dto.DoNotShowOptionResponse, error) {
	existing, err := s.repo.DoNotShowOption.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoNotShowOptionNotFound
		}
		s.logger.Error("get do-not-show entry failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	existing.OptionText = strings.TrimSpace(req.OptionText)
	if err := s.repo.DoNotShowOption.Update(ctx, existing); err != nil {
		s.logger.Error("update do-not-show entry failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return &dto.DoNotShowOptionResponse{ID: existing.ID, OptionText: existing.OptionText}, nil
}

func (s *optionService) DeleteDoNotShow(ctx context.Context, id int64) error {
	if _, err := s.repo.DoNotShowOption.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDoNotShowOptionNotFound
		}
		return err
	}
	if err := s.repo.DoNotShowOption.Delete(ctx, id); err != nil {
		s.logger.Error("delete do-not-show entry failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *optionService) ImportDoNotShow(ctx context.Context, r io.Reader) (*dto.BulkImportResponse, error) {
	rows, err := readWorkbookRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrImportNoRows
	}

	var options []model.DoNotShowOption
	skipped := 0
	for _, row := range rows[1:] {
		text := cellAt(row, 0)
		if text == "" {
			skipped++
			continue
		}
		options = append(options, model.DoNotShowOption{OptionText: text})
	}

	if err := s.repo.DoNotShowOption.BatchCreate(ctx, options); err != nil {
		s.logger.Error("bulk insert do-not-show entries failed", zap.Error(err))
		return nil, err
	}
	return &dto.BulkImportResponse{Inserted: len(options), Skipped: skipped}, nil
}

// ── internal helpers ──

func toModelOptionResponse(o *model.ModelOption) dto.ModelOptionResponse {
	return dto.ModelOptionResponse{
		ID:         o.ID,
		ModelID:    o.ModelID,
		OptionText: o.OptionText,
	}
}
