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

// ── station business errors ──

var (
	ErrStationNotFound     = errors.New("station not found")
	ErrStationReorderEmpty = errors.New("reorder requires at least one station id")
)

// StationService manages production stations. station_sequence is
// presentation order only; nothing downstream enforces it.
type StationService interface {
	Create(ctx context.Context, req *dto.CreateStationRequest) (*dto.StationResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.StationResponse, error)
	List(ctx context.Context) ([]dto.StationResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStationRequest) (*dto.StationResponse, error)
	Delete(ctx context.Context, id int64) error

	// Reorder persists a dragged presentation order: sequence numbers are
	// reassigned 1..n following the given id order.
	Reorder(ctx context.Context, req *dto.ReorderStationsRequest) ([]dto.StationResponse, error)

	// ImportWorkbook bulk-creates stations from a single-column workbook.
	ImportWorkbook(ctx context.Context, r io.Reader) (*dto.BulkImportResponse, error)
}

type stationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStationService creates a StationService instance.
func NewStationService(repo *repository.Repository, logger *zap.Logger) StationService {
	return &stationService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *stationService) Create(ctx context.Context, req *dto.CreateStationRequest) (*dto.StationResponse, error) {
	st := &model.Station{
		Name:            strings.TrimSpace(req.Name),
		StationSequence: req.StationSequence,
	}
	if err := s.repo.Station.Create(ctx, st); err != nil {
		s.logger.Error("create station failed", zap.Error(err))
		return nil, err
	}
	return toStationResponse(st), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *stationService) GetByID(ctx context.Context, id int64) (*dto.StationResponse, error) {
	st, err := s.repo.Station.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStationNotFound
		}
		s.logger.Error("get station failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toStationResponse(st), nil
}

// ────────────────────── List ──────────────────────

func (s *stationService) List(ctx context.Context) ([]dto.StationResponse, error) {
	stations, err := s.repo.Station.List(ctx)
	if err != nil {
		s.logger.Error("list stations failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.StationResponse, 0, len(stations))
	for i := range stations {
		result = append(result, *toStationResponse(&stations[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *stationService) Update(ctx context.Context, id int64, req *dto.UpdateStationRequest) (*dto.StationResponse, error) {
	st, err := s.repo.Station.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStationNotFound
		}
		s.logger.Error("get station failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		st.Name = strings.TrimSpace(*req.Name)
	}
	if req.StationSequence != nil {
		st.StationSequence = req.StationSequence
	}

	if err := s.repo.Station.Update(ctx, st); err != nil {
		s.logger.Error("update station failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toStationResponse(st), nil
}

// ────────────────────── Delete ──────────────────────

func (s *stationService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Station.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStationNotFound
		}
		return err
	}
	if err := s.repo.Station.Delete(ctx, id); err != nil {
		s.logger.Error("delete station failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Reorder: persist a dragged presentation order
// ═══════════════════════════════════════════════════════════

func (s *stationService) Reorder(ctx context.Context, req *dto.ReorderStationsRequest) ([]dto.StationResponse, error) {
	if len(req.IDs) == 0 {
		return nil, ErrStationReorderEmpty
	}

	// verify every id names an existing station before writing anything
	for _, id := range req.IDs {
		if _, err := s.repo.Station.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStationNotFound
			}
			return nil, err
		}
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	txRepo := s.repo.WithTx(tx)
	for i, id := range req.IDs {
		if err := txRepo.Station.UpdateSequence(ctx, id, i+1); err != nil {
			if tx != nil {
				tx.Rollback()
			}
			s.logger.Error("reorder stations failed", zap.Int64("id", id), zap.Error(err))
			return nil, err
		}
	}
	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			return nil, err
		}
	}

	return s.List(ctx)
}

// ═══════════════════════════════════════════════════════════
// ImportWorkbook: single-column bulk import
// ═══════════════════════════════════════════════════════════

func (s *stationService) ImportWorkbook(ctx context.Context, r io.Reader) (*dto.BulkImportResponse, error) {
	rows, err := readWorkbookRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrImportNoRows
	}

	var stations []model.Station
	skipped := 0
	for _, row := range rows[1:] {
		name := cellAt(row, 0)
		if name == "" {
			skipped++
			continue
		}
		stations = append(stations, model.Station{Name: name})
	}

	if err := s.repo.Station.BatchCreate(ctx, stations); err != nil {
		s.logger.Error("bulk insert stations failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("stations imported",
		zap.Int("inserted", len(stations)), zap.Int("skipped", skipped))
	return &dto.BulkImportResponse{Inserted: len(stations), Skipped: skipped}, nil
}

// ── internal helpers ──

func toStationResponse(st *model.Station) *dto.StationResponse {
	return &dto.StationResponse{
		ID:              st.ID,
		Name:            st.Name,
		StationSequence: st.StationSequence,
	}
}
