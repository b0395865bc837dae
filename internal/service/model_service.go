package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/model"
	"github.com/colejunck1/Task-Tracker/internal/repository"
)

// ── model business errors ──

var ErrModelNotFound = errors.New("model not found")

// ModelService manages the boat product lines.
type ModelService interface {
	Create(ctx context.Context, req *dto.CreateModelRequest) (*dto.ModelResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ModelResponse, error)
	List(ctx context.Context) ([]dto.ModelResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateModelRequest) (*dto.ModelResponse, error)
	Delete(ctx context.Context, id int64) error
}

type modelService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewModelService creates a ModelService instance.
func NewModelService(repo *repository.Repository, logger *zap.Logger) ModelService {
	return &modelService{repo: repo, logger: logger}
}

func (s *modelService) Create(ctx context.Context, req *dto.CreateModelRequest) (*dto.ModelResponse, error) {
	m := &model.Model{Name: strings.TrimSpace(req.Name)}
	if err := s.repo.Model.Create(ctx, m); err != nil {
		s.logger.Error("create model failed", zap.Error(err))
		return nil, err
	}
	return &dto.ModelResponse{ID: m.ID, Name: m.Name}, nil
}

func (s *modelService) GetByID(ctx context.Context, id int64) (*dto.ModelResponse, error) {
	m, err := s.repo.Model.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		s.logger.Error("get model failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return &dto.ModelResponse{ID: m.ID, Name: m.Name}, nil
}

func (s *modelService) List(ctx context.Context) ([]dto.ModelResponse, error) {
	models, err := s.repo.Model.List(ctx)
	if err != nil {
		s.logger.Error("list models failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.ModelResponse, 0, len(models))
	for i := range models {
		result = append(result, dto.ModelResponse{ID: models[i].ID, Name: models[i].Name})
	}
	return result, nil
}

func (s *modelService) Update(ctx context.Context, id int64, req *dto.UpdateModelRequest) (*dto.ModelResponse, error) {
	m, err := s.repo.Model.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		s.logger.Error("get model failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	m.Name = strings.TrimSpace(req.Name)
	if err := s.repo.Model.Update(ctx, m); err != nil {
		s.logger.Error("update model failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return &dto.ModelResponse{ID: m.ID, Name: m.Name}, nil
}

func (s *modelService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Model.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrModelNotFound
		}
		return err
	}
	if err := s.repo.Model.Delete(ctx, id); err != nil {
		s.logger.Error("delete model failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
