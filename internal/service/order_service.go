package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/colejunck1/Task-Tracker/internal/dto"
	"github.com/colejunck1/Task-Tracker/internal/model"
	"github.com/colejunck1/Task-Tracker/internal/repository"
)

// ── boat order business errors ──

var (
	ErrOrderNotFound      = errors.New("boat order not found")
	ErrOrderFileName      = errors.New("failed to parse hull number or revision date from file name")
	ErrOrderUnreadablePDF = errors.New("could not read PDF content")
	ErrOrderEmptyFile     = errors.New("uploaded file is empty")
)

// ObjectStore is the slice of the storage client the order flow needs.
type ObjectStore interface {
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	PublicURL(name string) string
}

// OrderService handles order ingestion and retrieval.
type OrderService interface {
	// Ingest runs the full upload pipeline: store the PDF, extract its text,
	// parse the filename, create the order, expand master tasks for the
	// order's model and record the extracted option lines.
	Ingest(ctx context.Context, fileName string, data []byte) (*dto.IngestOrderResponse, error)
	List(ctx context.Context, req *dto.BoatOrderListRequest) ([]dto.BoatOrderResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.BoatOrderDetailResponse, error)
	PDFURL(ctx context.Context, id int64) (*dto.BoatOrderPDFResponse, error)
}

type orderService struct {
	repo   *repository.Repository
	store  ObjectStore
	logger *zap.Logger
}

// NewOrderService creates an OrderService instance.
func NewOrderService(repo *repository.Repository, store ObjectStore, logger *zap.Logger) OrderService {
	return &orderService{repo: repo, store: store, logger: logger}
}

// ── filename parsing ──────────────────────────────────────────
//
// Order documents arrive named like
//
//	Production Order 39154 - Feb. 13, 25.pdf
//
// The hull number and revision date are taken from the name, never from the
// document body. The date part is normalized by table lookup: periods are
// stripped, the month token maps through a fixed twelve-entry table, the day
// is zero-padded and a two-digit year gets the 20xx century. No calendar
// validation happens here.
// ──────────────────────────────────────────────────────────────

var orderFileNameRe = regexp.MustCompile(`(?i)^Production Order\s+(\d+)\s*-\s*(.+)\.pdf$`)

var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// ParseOrderFileName extracts the hull number and ISO revision date from a
// production order filename. ok is false when either cannot be determined.
func ParseOrderFileName(fileName string) (hull, revisionDate string, ok bool) {
	m := orderFileNameRe.FindStringSubmatch(strings.TrimSpace(fileName))
	if m == nil {
		return "", "", false
	}
	hull = m[1]

	datePart := strings.ReplaceAll(m[2], ".", "")
	datePart = strings.ReplaceAll(datePart, ",", " ")
	fields := strings.Fields(datePart)
	if len(fields) != 3 {
		return "", "", false
	}

	monthToken := strings.ToLower(fields[0])
	if len(monthToken) < 3 {
		return "", "", false
	}
	month, found := monthNumbers[monthToken[:3]]
	if !found {
		return "", "", false
	}

	day := fields[1]
	if _, err := strconv.Atoi(day); err != nil {
		return "", "", false
	}
	if len(day) == 1 {
		day = "0" + day
	}

	year := fields[2]
	if _, err := strconv.Atoi(year); err != nil {
		return "", "", false
	}
	if len(year) == 2 {
		year = "20" + year
	}

	return hull, fmt.Sprintf("%s-%s-%s", year, month, day), true
}

// modelCodeFromHull derives the numeric model code from the hull number's
// leading two digits. Nil when the hull is too short or non-numeric there.
func modelCodeFromHull(hull string) *int64 {
	if len(hull) < 2 {
		return nil
	}
	code, err := strconv.ParseInt(hull[:2], 10, 64)
	if err != nil {
		return nil
	}
	return &code
}

// revisionDateToTime turns an ISO date from ParseOrderFileName into a time
// value. Out-of-range days normalize forward rather than failing, keeping
// the filename parser free of calendar rules.
func revisionDateToTime(iso string) (time.Time, error) {
	parts := strings.SplitN(iso, "-", 3)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("malformed date %q", iso)
	}
	y, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	d, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, fmt.Errorf("malformed date %q", iso)
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), nil
}

// ═══════════════════════════════════════════════════════════
// Ingest: the order upload pipeline
// ═══════════════════════════════════════════════════════════
//
// Stages run in order; a failed stage stops the pipeline and reports its
// error, but never undoes earlier stages. The task expansion and the option
// lines each commit in their own transaction.

func (s *orderService) Ingest(ctx context.Context, fileName string, data []byte) (*dto.IngestOrderResponse, error) {
	if len(data) == 0 {
		return nil, ErrOrderEmptyFile
	}

	// 1. store the original document under its filename
	if err := s.store.Put(ctx, fileName, bytes.NewReader(data), int64(len(data)), "application/pdf"); err != nil {
		s.logger.Error("order upload to object store failed",
			zap.String("file", fileName), zap.Error(err))
		return nil, err
	}

	// 2. extract document text
	text, err := ExtractOrderText(data)
	if err != nil {
		s.logger.Warn("order PDF unreadable", zap.String("file", fileName), zap.Error(err))
		return nil, ErrOrderUnreadablePDF
	}

	// 3. parse hull number and revision date from the filename
	hull, revDate, ok := ParseOrderFileName(fileName)
	if !ok {
		return nil, ErrOrderFileName
	}
	revTime, err := revisionDateToTime(revDate)
	if err != nil {
		return nil, ErrOrderFileName
	}

	// 4. create the order row
	modelCode := modelCodeFromHull(hull)
	order := &model.BoatOrder{
		HullNumber:   hull,
		RevisionDate: revTime,
		FileName:     fileName,
		Model:        modelCode,
	}
	if err := s.repo.BoatOrder.Create(ctx, order); err != nil {
		s.logger.Error("create boat order failed", zap.String("hull", hull), zap.Error(err))
		return nil, err
	}

	// 5. expand the model's master tasks into per-hull instances
	tasksCreated, err := s.expandMasterTasks(ctx, order)
	if err != nil {
		s.logger.Error("task expansion failed",
			zap.Int64("order_id", order.ID), zap.Error(err))
		return nil, err
	}

	// 6. record the extracted option lines
	optionsCreated, err := s.recordOptionLines(ctx, order, text)
	if err != nil {
		s.logger.Error("recording option lines failed",
			zap.Int64("order_id", order.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("boat order ingested",
		zap.Int64("order_id", order.ID),
		zap.String("hull", hull),
		zap.Int("tasks", tasksCreated),
		zap.Int("options", optionsCreated),
	)

	return &dto.IngestOrderResponse{
		OrderID:        order.ID,
		HullNumber:     hull,
		RevisionDate:   revDate,
		FileName:       fileName,
		Model:          modelCode,
		TasksCreated:   tasksCreated,
		OptionsCreated: optionsCreated,
	}, nil
}

// expandMasterTasks copies every master task of the order's model into
// tasks_per_hull. A model with no masters, or an order with no derivable
// model code, yields zero instances without error.
func (s *orderService) expandMasterTasks(ctx context.Context, order *model.BoatOrder) (int, error) {
	if order.Model == nil {
		return 0, nil
	}
	masters, err := s.repo.TaskData.ListByModel(ctx, *order.Model)
	if err != nil {
		return 0, err
	}
	if len(masters) == 0 {
		return 0, nil
	}

	instances := make([]model.TaskPerHull, 0, len(masters))
	for i := range masters {
		m := &masters[i]
		id := m.ID
		instances = append(instances, model.TaskPerHull{
			HullNumber:    order.HullNumber,
			Model:         order.Model,
			Station:       m.Station,
			TaskName:      m.TaskName,
			Status:        model.StatusUpcoming,
			Applicable:    true,
			ScheduleGroup: m.ScheduleGroup,
			TaskDataID:    &id,
		})
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.repo.WithTx(tx).TaskPerHull.BatchCreate(ctx, instances); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		return 0, err
	}
	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			return 0, err
		}
	}
	return len(instances), nil
}

// recordOptionLines splits the extracted text into trimmed lines, drops
// empties and suppressed lines, flags known header lines of the order's
// model and batch-inserts the rest.
func (s *orderService) recordOptionLines(ctx context.Context, order *model.BoatOrder, text string) (int, error) {
	suppressed, err := s.repo.DoNotShowOption.List(ctx)
	if err != nil {
		return 0, err
	}
	suppressedSet := make(map[string]bool, len(suppressed))
	for i := range suppressed {
		suppressedSet[strings.ToLower(strings.TrimSpace(suppressed[i].OptionText))] = true
	}

	headerSet := make(map[string]bool)
	if order.Model != nil {
		headers, err := s.repo.BoatOrderHeader.ListByModel(ctx, *order.Model)
		if err != nil {
			return 0, err
		}
		for i := range headers {
			headerSet[strings.TrimSpace(headers[i].HeaderText)] = true
		}
	}

	var options []model.BoatOrderOption
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || suppressedSet[strings.ToLower(line)] {
			continue
		}
		options = append(options, model.BoatOrderOption{
			BoatOrderID: order.ID,
			OptionText:  line,
			IsHeader:    headerSet[line],
		})
	}
	if len(options) == 0 {
		return 0, nil
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.repo.WithTx(tx).BoatOrderOption.BatchCreate(ctx, options); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		return 0, err
	}
	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			return 0, err
		}
	}
	return len(options), nil
}

// ────────────────────── List ──────────────────────

func (s *orderService) List(ctx context.Context, req *dto.BoatOrderListRequest) ([]dto.BoatOrderResponse, error) {
	orders, err := s.repo.BoatOrder.List(ctx, strings.TrimSpace(req.Search))
	if err != nil {
		s.logger.Error("list boat orders failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.BoatOrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, toBoatOrderResponse(&orders[i]))
	}
	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *orderService) GetByID(ctx context.Context, id int64) (*dto.BoatOrderDetailResponse, error) {
	order, err := s.repo.BoatOrder.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("get boat order failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	options, err := s.repo.BoatOrderOption.ListByOrder(ctx, id)
	if err != nil {
		s.logger.Error("list order options failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	var headers []model.BoatOrderHeader
	if order.Model != nil {
		headers, err = s.repo.BoatOrderHeader.ListByModel(ctx, *order.Model)
		if err != nil {
			s.logger.Error("list order headers failed", zap.Int64("id", id), zap.Error(err))
			return nil, err
		}
	}

	detail := &dto.BoatOrderDetailResponse{
		Order:   toBoatOrderResponse(order),
		Options: make([]dto.BoatOrderOptionResponse, 0, len(options)),
		Headers: make([]dto.HeaderResponse, 0, len(headers)),
	}
	for i := range options {
		detail.Options = append(detail.Options, dto.BoatOrderOptionResponse{
			ID:         options[i].ID,
			OptionText: options[i].OptionText,
			IsHeader:   options[i].IsHeader,
		})
	}
	for i := range headers {
		detail.Headers = append(detail.Headers, dto.HeaderResponse{
			ID:         headers[i].ID,
			ModelID:    headers[i].ModelID,
			HeaderText: headers[i].HeaderText,
		})
	}
	return detail, nil
}

// ────────────────────── PDFURL ──────────────────────

func (s *orderService) PDFURL(ctx context.Context, id int64) (*dto.BoatOrderPDFResponse, error) {
	order, err := s.repo.BoatOrder.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("get boat order failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return &dto.BoatOrderPDFResponse{
		FileName: order.FileName,
		URL:      s.store.PublicURL(order.FileName),
	}, nil
}

// ── internal helpers ──

func toBoatOrderResponse(o *model.BoatOrder) dto.BoatOrderResponse {
	return dto.BoatOrderResponse{
		ID:           o.ID,
		HullNumber:   o.HullNumber,
		RevisionDate: o.RevisionDate.Format("2006-01-02"),
		FileName:     o.FileName,
		Model:        o.Model,
		CreatedAt:    o.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
