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

// ── header business errors ──

var ErrHeaderNotFound = errors.New("header line not found")

// HeaderService manages the known section-header lines per model. Order
// ingestion flags extracted option lines that match one of these.
type HeaderService interface {
	ListByModel(ctx context.Context, modelID int64) ([]dto.HeaderResponse, error)
	Add(ctx context.Context, modelID int64, req *dto.HeaderTextRequest) (*dto.HeaderResponse, error)
	Update(ctx context.Context, id int64, req *dto.HeaderTextRequest) (*dto.HeaderResponse, error)
	Delete(ctx context.Context, id int64) error
	ImportWorkbook(ctx context.Context, modelID int64, r io.Reader) (*dto.BulkImportResponse, error)
}

type headerService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHeaderService creates a HeaderService instance.
func NewHeaderService(repo *repository.Repository, logger *zap.Logger) HeaderService {
	return &headerService{repo: repo, logger: logger}
}

func (s *headerService) ListByModel(ctx context.Context, modelID int64) ([]dto.HeaderResponse, error) {
	if _, err := s.repo.Model.GetByID(ctx, modelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}
	headers, err := s.repo.BoatOrderHeader.ListByModel(ctx, modelID)
	if err != nil {
		s.logger.Error("list headers failed", zap.Int64("model_id", modelID), zap.Error(err))
		return nil, err
	}
	result := make([]dto.HeaderResponse, 0, len(headers))
	for i := range headers {
		result = append(result, toHeaderResponse(&headers[i]))
	}
	return result, nil
}

func (s *headerService) Add(ctx context.Context, modelID int64, req *dto.HeaderTextRequest) (*dto.HeaderResponse, error) {
	if _, err := s.repo.Model.GetByID(ctx, modelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}
	h := &model.BoatOrderHeader{ModelID: modelID, HeaderText: strings.TrimSpace(req.HeaderText)}
	if err := s.repo.BoatOrderHeader.Create(ctx, h); err != nil {
		s.logger.Error("create header failed", zap.Int64("model_id", modelID), zap.Error(err))
		return nil, err
	}
	resp := toHeaderResponse(h)
	return &resp, nil
}

func (s *headerService) Update(ctx context.Context, id int64, req *dto.HeaderTextRequest) (*dto.HeaderResponse, error) {
	h, err := s.repo.BoatOrderHeader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHeaderNotFound
		}
		s.logger.Error("get header failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	h.HeaderText = strings.TrimSpace(req.HeaderText)
	if err := s.repo.BoatOrderHeader.Update(ctx, h); err != nil {
		s.logger.Error("update header failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	resp := toHeaderResponse(h)
	return &resp, nil
}

func (s *headerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.BoatOrderHeader.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHeaderNotFound
		}
		return err
	}
	if err := s.repo.BoatOrderHeader.Delete(ctx, id); err != nil {
		s.logger.Error("delete header failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *headerService) ImportWorkbook(ctx context.Context, modelID int64, r io.Reader) (*dto.BulkImportResponse, error) {
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

	var headers []model.BoatOrderHeader
	skipped := 0
	for _, row := range rows[1:] {
		text := cellAt(row, 0)
		if text == "" {
			skipped++
			continue
		}
		headers = append(headers, model.BoatOrderHeader{ModelID: modelID, HeaderText: text})
	}

	if err := s.repo.BoatOrderHeader.BatchCreate(ctx, headers); err != nil {
		s.logger.Error("bulk insert headers failed", zap.Int64("model_id", modelID), zap.Error(err))
		return nil, err
	}
	return &dto.BulkImportResponse{Inserted: len(headers), Skipped: skipped}, nil
}

// ── internal helpers ──

func toHeaderResponse(h *model.BoatOrderHeader) dto.HeaderResponse {
	return dto.HeaderResponse{
		ID:         h.ID,
		ModelID:    h.ModelID,
		HeaderText: h.HeaderText,
	}
}
