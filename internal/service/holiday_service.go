package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/model"
	"github.com/colejunck1/Task-Tracker/internal/repository"
)

// ── holiday business errors ──

var (
	ErrHolidayNotFound   = errors.New("holiday not found")
	ErrHolidayBadDate    = errors.New("invalid holiday date")
	ErrHolidayBadICSFile = errors.New("could not parse calendar file")
)

// HolidayService manages the non-working calendar. Auto-scheduling slides
// station dates past these.
type HolidayService interface {
	Create(ctx context.Context, req *dto.CreateHolidayRequest) (*dto.HolidayResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.HolidayResponse, error)
	List(ctx context.Context) ([]dto.HolidayResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateHolidayRequest) (*dto.HolidayResponse, error)
	Delete(ctx context.Context, id int64) error

	// ImportICS imports every VEVENT date (DTSTART, SUMMARY as name) from
	// an iCalendar file, skipping dates already on the calendar.
	ImportICS(ctx context.Context, r io.Reader) (*dto.ImportHolidaysResponse, error)
}

type holidayService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHolidayService creates a HolidayService instance.
func NewHolidayService(repo *repository.Repository, logger *zap.Logger) HolidayService {
	return &holidayService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *holidayService) Create(ctx context.Context, req *dto.CreateHolidayRequest) (*dto.HolidayResponse, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(req.HolidayDate))
	if err != nil {
		return nil, ErrHolidayBadDate
	}
	h := &model.CompanyHoliday{
		HolidayName: strings.TrimSpace(req.HolidayName),
		HolidayDate: date,
	}
	if err := s.repo.Holiday.Create(ctx, h); err != nil {
		s.logger.Error("create holiday failed", zap.Error(err))
		return nil, err
	}
	resp := toHolidayResponse(h)
	return &resp, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *holidayService) GetByID(ctx context.Context, id int64) (*dto.HolidayResponse, error) {
	h, err := s.repo.Holiday.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHolidayNotFound
		}
		s.logger.Error("get holiday failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	resp := toHolidayResponse(h)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *holidayService) List(ctx context.Context) ([]dto.HolidayResponse, error) {
	holidays, err := s.repo.Holiday.List(ctx)
	if err != nil {
		s.logger.Error("list holidays failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.HolidayResponse, 0, len(holidays))
	for i := range holidays {
		result = append(result, toHolidayResponse(&holidays[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *holidayService) Update(ctx context.Context, id int64, req *dto.UpdateHolidayRequest) (*dto.HolidayResponse, error) {
	h, err := s.repo.Holiday.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHolidayNotFound
		}
		s.logger.Error("get holiday failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if req.HolidayName != nil {
		h.HolidayName = strings.TrimSpace(*req.HolidayName)
	}
	if req.HolidayDate != nil {
		date, err := time.Parse("2006-01-02", strings.TrimSpace(*req.HolidayDate))
		if err != nil {
			return nil, ErrHolidayBadDate
		}
		h.HolidayDate = date
	}

	if err := s.repo.Holiday.Update(ctx, h); err != nil {
		s.logger.Error("update holiday failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	resp := toHolidayResponse(h)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *holidayService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Holiday.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHolidayNotFound
		}
		return err
	}
	if err := s.repo.Holiday.Delete(ctx, id); err != nil {
		s.logger.Error("delete holiday failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// ImportICS: iCalendar bulk import
// ═══════════════════════════════════════════════════════════
//
// Every VEVENT contributes one holiday: DTSTART names the date, SUMMARY the
// name (falling back to "Holiday"). Dates already on the calendar are
// skipped, whether present before the import or repeated inside the file.

func (s *holidayService) ImportICS(ctx context.Context, r io.Reader) (*dto.ImportHolidaysResponse, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, ErrHolidayBadICSFile
	}

	existing, err := s.repo.Holiday.List(ctx)
	if err != nil {
		s.logger.Error("list holidays failed", zap.Error(err))
		return nil, err
	}
	seen := make(map[string]bool, len(existing))
	for i := range existing {
		seen[existing[i].HolidayDate.Format("2006-01-02")] = true
	}

	var holidays []model.CompanyHoliday
	skipped := 0
	for _, evt := range cal.Events() {
		date, ok := icsEventDate(evt)
		if !ok {
			skipped++
			continue
		}
		key := date.Format("2006-01-02")
		if seen[key] {
			skipped++
			continue
		}
		seen[key] = true

		name := "Holiday"
		if p := evt.GetProperty(ics.ComponentPropertySummary); p != nil && strings.TrimSpace(p.Value) != "" {
			name = strings.TrimSpace(p.Value)
		}
		holidays = append(holidays, model.CompanyHoliday{
			HolidayName: name,
			HolidayDate: date,
		})
	}

	if err := s.repo.Holiday.BatchCreate(ctx, holidays); err != nil {
		s.logger.Error("bulk insert holidays failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("holidays imported",
		zap.Int("imported", len(holidays)), zap.Int("skipped", skipped))
	return &dto.ImportHolidaysResponse{Imported: len(holidays), Skipped: skipped}, nil
}

// icsEventDate pulls the DTSTART date out of a VEVENT, tolerating the common
// iCalendar datetime shapes.
func icsEventDate(evt *ics.VEvent) (time.Time, bool) {
	prop := evt.GetProperty(ics.ComponentPropertyDtStart)
	if prop == nil {
		return time.Time{}, false
	}
	formats := []string{
		"20060102T150405Z",
		"20060102T150405",
		"20060102",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, prop.Value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// ── internal helpers ──

func toHolidayResponse(h *model.CompanyHoliday) dto.HolidayResponse {
	return dto.HolidayResponse{
		ID:          h.ID,
		HolidayName: h.HolidayName,
		HolidayDate: h.HolidayDate.Format("2006-01-02"),
	}
}
