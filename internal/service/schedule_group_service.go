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

// ── schedule group business errors ──

var ErrScheduleGroupNotFound = errors.New("schedule group not found")

// ScheduleGroupService manages the named day-offset rules. The offsets
// inform scheduling decisions; nothing enforces them.
type ScheduleGroupService interface {
	Create(ctx context.Context, req *dto.CreateScheduleGroupRequest) (*dto.ScheduleGroupResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ScheduleGroupResponse, error)
	List(ctx context.Context) ([]dto.ScheduleGroupResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateScheduleGroupRequest) (*dto.ScheduleGroupResponse, error)
	Delete(ctx context.Context, id int64) error
	BulkDelete(ctx context.Context, req *dto.BulkDeleteRequest) error

	// ImportWorkbook bulk-creates groups from fixed columns
	// [schedule_group, days_offset, offset_type, station].
	ImportWorkbook(ctx context.Context, r io.Reader) (*dto.BulkImportResponse, error)
}

type scheduleGroupService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleGroupService creates a ScheduleGroupService instance.
func NewScheduleGroupService(repo *repository.Repository, logger *zap.Logger) ScheduleGroupService {
	return &scheduleGroupService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *scheduleGroupService) Create(ctx context.Context, req *dto.CreateScheduleGroupRequest) (*dto.ScheduleGroupResponse, error) {
	g := &model.ScheduleGroup{
		ScheduleGroup: strings.TrimSpace(req.ScheduleGroup),
		DaysOffset:    req.DaysOffset,
		OffsetType:    strings.TrimSpace(req.OffsetType),
		Station:       strings.TrimSpace(req.Station),
	}
	if err := s.repo.ScheduleGroup.Create(ctx, g); err != nil {
		s.logger.Error("create schedule group failed", zap.Error(err))
		return nil, err
	}
	return toScheduleGroupResponse(g), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *scheduleGroupService) GetByID(ctx context.Context, id int64) (*dto.ScheduleGroupResponse, error) {
	g, err := s.repo.ScheduleGroup.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleGroupNotFound
		}
		s.logger.Error("get schedule group failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toScheduleGroupResponse(g), nil
}

// ────────────────────── List ──────────────────────

func (s *scheduleGroupService) List(ctx context.Context) ([]dto.ScheduleGroupResponse, error) {
	groups, err := s.repo.ScheduleGroup.List(ctx)
	if err != nil {
		s.logger.Error("list schedule groups failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.ScheduleGroupResponse, 0, len(groups))
	for i := range groups {
		result = append(result, *toScheduleGroupResponse(&groups[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *scheduleGroupService) Update(ctx context.Context, id int64, req *dto.UpdateScheduleGroupRequest) (*dto.ScheduleGroupResponse, error) {
	g, err := s.repo.ScheduleGroup.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleGroupNotFound
		}
		s.logger.Error("get schedule group failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.ScheduleGroup != nil {
		g.ScheduleGroup = strings.TrimSpace(*req.ScheduleGroup)
	}
	if req.DaysOffset != nil {
		g.DaysOffset = req.DaysOffset
	}
	if req.OffsetType != nil {
		g.OffsetType = strings.TrimSpace(*req.OffsetType)
	}
	if req.Station != nil {
		g.Station = strings.TrimSpace(*req.Station)
	}

	if err := s.repo.ScheduleGroup.Update(ctx, g); err != nil {
		s.logger.Error("update schedule group failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toScheduleGroupResponse(g), nil
}

// ────────────────────── Delete ──────────────────────

func (s *scheduleGroupService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.ScheduleGroup.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleGroupNotFound
		}
		return err
	}
	if err := s.repo.ScheduleGroup.Delete(ctx, id); err != nil {
		s.logger.Error("delete schedule group failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── BulkDelete ──────────────────────

func (s *scheduleGroupService) BulkDelete(ctx context.Context, req *dto.BulkDeleteRequest) error {
	if err := s.repo.ScheduleGroup.DeleteByIDs(ctx, req.IDs); err != nil {
		s.logger.Error("bulk delete schedule groups failed", zap.Error(err))
		return err
	}
	s.logger.Info("schedule groups deleted", zap.Int("count", len(req.IDs)))
	return nil
}

// ═══════════════════════════════════════════════════════════
// ImportWorkbook: fixed-column bulk import
// ═══════════════════════════════════════════════════════════

// scheduleGroupImportColumns is the fixed import/export column order.
var scheduleGroupImportColumns = []string{
	"schedule_group", "days_offset", "offset_type", "station",
}

func (s *scheduleGroupService) ImportWorkbook(ctx context.Context, r io.Reader) (*dto.BulkImportResponse, error) {
	rows, err := readWorkbookRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrImportNoRows
	}

	var groups []model.ScheduleGroup
	skipped := 0
	for _, row := range rows[1:] {
		name := cellAt(row, 0)
		if name == "" {
			skipped++
			continue
		}
		offset := int(coerceInt64(cellAt(row, 1)))
		groups = append(groups, model.ScheduleGroup{
			ScheduleGroup: name,
			DaysOffset:    &offset,
			OffsetType:    cellAt(row, 2),
			Station:       cellAt(row, 3),
		})
	}

	if err := s.repo.ScheduleGroup.BatchCreate(ctx, groups); err != nil {
		s.logger.Error("bulk insert schedule groups failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("schedule groups imported",
		zap.Int("inserted", len(groups)), zap.Int("skipped", skipped))
	return &dto.BulkImportResponse{Inserted: len(groups), Skipped: skipped}, nil
}

// ── internal helpers ──

func toScheduleGroupResponse(g *model.ScheduleGroup) *dto.ScheduleGroupResponse {
	return &dto.ScheduleGroupResponse{
		ID:            g.ID,
		ScheduleGroup: g.ScheduleGroup,
		DaysOffset:    g.DaysOffset,
		OffsetType:    g.OffsetType,
		Station:       g.Station,
	}
}
