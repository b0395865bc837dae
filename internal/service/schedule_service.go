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

// ── production schedule business errors ──

var (
	ErrScheduleSlotNotFound = errors.New("schedule slot not found")
	ErrScheduleBadColumn    = errors.New("unknown schedule column")
	ErrScheduleBadDate      = errors.New("invalid schedule date")
	ErrScheduleBadStation   = errors.New("unknown start station")
)

// ScheduleService manages the production schedule grid and the auto-schedule
// walk over its fixed station column order.
type ScheduleService interface {
	Create(ctx context.Context, req *dto.CreateScheduleSlotRequest) (*dto.ScheduleSlotResponse, error)
	List(ctx context.Context) ([]dto.ScheduleSlotResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ScheduleSlotResponse, error)

	// UpdateCell writes one cell of a slot row. An empty value clears the
	// cell. Last write wins.
	UpdateCell(ctx context.Context, id int64, req *dto.UpdateScheduleCellRequest) (*dto.ScheduleSlotResponse, error)
	Delete(ctx context.Context, id int64) error

	// AutoSchedule fills the station dates of one slot: the start station
	// gets the start date, every following station (in the chosen walk
	// direction) gets the previous date stepped by TAKT days and slid past
	// company holidays. Stations behind the start are untouched.
	AutoSchedule(ctx context.Context, id int64, req *dto.AutoScheduleRequest) (*dto.ScheduleSlotResponse, error)
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService creates a ScheduleService instance.
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *scheduleService) Create(ctx context.Context, req *dto.CreateScheduleSlotRequest) (*dto.ScheduleSlotResponse, error) {
	slot := &model.ProductionScheduleSlot{
		SlotNumber: strings.TrimSpace(req.SlotNumber),
		Takt:       req.Takt,
		BoatModel:  req.BoatModel,
		HullNumber: strings.TrimSpace(req.HullNumber),
	}
	if err := s.repo.ProductionSchedule.Create(ctx, slot); err != nil {
		s.logger.Error("create schedule slot failed", zap.Error(err))
		return nil, err
	}
	resp := toScheduleSlotResponse(slot)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *scheduleService) List(ctx context.Context) ([]dto.ScheduleSlotResponse, error) {
	slots, err := s.repo.ProductionSchedule.List(ctx)
	if err != nil {
		s.logger.Error("list schedule slots failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.ScheduleSlotResponse, 0, len(slots))
	for i := range slots {
		result = append(result, toScheduleSlotResponse(&slots[i]))
	}
	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *scheduleService) GetByID(ctx context.Context, id int64) (*dto.ScheduleSlotResponse, error) {
	slot, err := s.findSlot(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toScheduleSlotResponse(slot)
	return &resp, nil
}

// ────────────────────── UpdateCell ──────────────────────

func (s *scheduleService) UpdateCell(ctx context.Context, id int64, req *dto.UpdateScheduleCellRequest) (*dto.ScheduleSlotResponse, error) {
	if _, err := s.findSlot(ctx, id); err != nil {
		return nil, err
	}

	column := strings.TrimSpace(req.Column)
	value := strings.TrimSpace(req.Value)

	switch {
	case model.IsStationDateColumn(column):
		if value != "" {
			if _, err := time.Parse("2006-01-02", value); err != nil {
				return nil, ErrScheduleBadDate
			}
		}
	case column == "slot_number", column == "hull_number":
		// plain text cells
	default:
		return nil, ErrScheduleBadColumn
	}

	var v *string
	if value != "" {
		v = &value
	}
	if err := s.repo.ProductionSchedule.UpdateCell(ctx, id, column, v); err != nil {
		s.logger.Error("update schedule cell failed",
			zap.Int64("id", id), zap.String("column", column), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *scheduleService) Delete(ctx context.Context, id int64) error {
	if _, err := s.findSlot(ctx, id); err != nil {
		return err
	}
	if err := s.repo.ProductionSchedule.Delete(ctx, id); err != nil {
		s.logger.Error("delete schedule slot failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// AutoSchedule: fill station dates by walking the column order
// ═══════════════════════════════════════════════════════════
//
// The walk starts at schedule_from with start_date assigned as given. Each
// following station (toward shipment when Forward, toward lam_grid when
// Backwards) takes the previous station's date stepped by TAKT calendar
// days. Before a stepped date is assigned it slides one day at a time in
// the walk direction until it leaves the holiday calendar. Weekends are
// working days here. The whole row persists in one write.

func (s *scheduleService) AutoSchedule(ctx context.Context, id int64, req *dto.AutoScheduleRequest) (*dto.ScheduleSlotResponse, error) {
	slot, err := s.findSlot(ctx, id)
	if err != nil {
		return nil, err
	}

	startIdx := -1
	for i, col := range model.StationDateColumns {
		if col == strings.TrimSpace(req.ScheduleFrom) {
			startIdx = i
			break
		}
	}
	if startIdx < 0 {
		return nil, ErrScheduleBadStation
	}

	startDate, err := time.Parse("2006-01-02", strings.TrimSpace(req.StartDate))
	if err != nil {
		return nil, ErrScheduleBadDate
	}

	holidays, err := s.repo.Holiday.List(ctx)
	if err != nil {
		s.logger.Error("list holidays failed", zap.Error(err))
		return nil, err
	}
	holidaySet := make(map[string]bool, len(holidays))
	for i := range holidays {
		holidaySet[holidays[i].HolidayDate.Format("2006-01-02")] = true
	}

	step := req.Takt
	slide := 1
	if req.Direction == "Backwards" {
		step = -req.Takt
		slide = -1
	}

	assign := func(idx int, d time.Time) {
		v := d
		slot.SetStationDate(model.StationDateColumns[idx], &v)
	}

	assign(startIdx, startDate)
	prev := startDate
	for idx := startIdx + slide; idx >= 0 && idx < len(model.StationDateColumns); idx += slide {
		next := prev.AddDate(0, 0, step)
		for holidaySet[next.Format("2006-01-02")] {
			next = next.AddDate(0, 0, slide)
		}
		assign(idx, next)
		prev = next
	}

	takt := req.Takt
	slot.Takt = &takt

	if err := s.repo.ProductionSchedule.Save(ctx, slot); err != nil {
		s.logger.Error("save auto-scheduled slot failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("slot auto-scheduled",
		zap.Int64("id", id),
		zap.String("from", req.ScheduleFrom),
		zap.String("direction", req.Direction),
		zap.Int("takt", req.Takt),
	)

	resp := toScheduleSlotResponse(slot)
	return &resp, nil
}

// ── internal helpers ──

func (s *scheduleService) findSlot(ctx context.Context, id int64) (*model.ProductionScheduleSlot, error) {
	slot, err := s.repo.ProductionSchedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleSlotNotFound
		}
		s.logger.Error("get schedule slot failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return slot, nil
}

func toScheduleSlotResponse(slot *model.ProductionScheduleSlot) dto.ScheduleSlotResponse {
	dates := make(map[string]string, len(model.StationDateColumns))
	for _, col := range model.StationDateColumns {
		if d := slot.StationDate(col); d != nil {
			dates[col] = d.Format("2006-01-02")
		}
	}
	return dto.ScheduleSlotResponse{
		ID:           slot.ID,
		SlotNumber:   slot.SlotNumber,
		Takt:         slot.Takt,
		BoatModel:    slot.BoatModel,
		HullNumber:   slot.HullNumber,
		StationDates: dates,
	}
}
