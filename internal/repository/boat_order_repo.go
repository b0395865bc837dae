package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/colejunck1/Task-Tracker/internal/model"
)

// BoatOrderRepository is the boat-order data access interface.
type BoatOrderRepository interface {
	Create(ctx context.Context, o *model.BoatOrder) error
	GetByID(ctx context.Context, id int64) (*model.BoatOrder, error)
	List(ctx context.Context, search string) ([]model.BoatOrder, error)
}

// BoatOrderOptionRepository is the extracted-option-line data access
// interface.
type BoatOrderOptionRepository interface {
	BatchCreate(ctx context.Context, options []model.BoatOrderOption) error
	ListByOrder(ctx context.Context, orderID int64) ([]model.BoatOrderOption, error)
}

// BoatOrderHeaderRepository is the per-model header-line data access
// interface.
type BoatOrderHeaderRepository interface {
	Create(ctx context.Context, h *model.BoatOrderHeader) error
	BatchCreate(ctx context.Context, headers []model.BoatOrderHeader) error
	GetByID(ctx context.Context, id int64) (*model.BoatOrderHeader, error)
	ListByModel(ctx context.Context, modelID int64) ([]model.BoatOrderHeader, error)
	Update(ctx context.Context, h *model.BoatOrderHeader) error
	Delete(ctx context.Context, id int64) error
}

// ── BoatOrder ──

type boatOrderRepo struct {
	db *gorm.DB
}

func NewBoatOrderRepo(db *gorm.DB) BoatOrderRepository {
	return &boatOrderRepo{db: db}
}

func (r *boatOrderRepo) Create(ctx context.Context, o *model.BoatOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *boatOrderRepo) GetByID(ctx context.Context, id int64) (*model.BoatOrder, error) {
	var o model.BoatOrder
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns orders newest revision first. The search term matches hull
// number, revision date, filename or the hull's leading model code, the same
// fields the dashboard filter used client-side.
func (r *boatOrderRepo) List(ctx context.Context, search string) ([]model.BoatOrder, error) {
	q := r.db.WithContext(ctx).Order("revision_date DESC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"hull_number ILIKE ? OR file_name ILIKE ? OR revision_date::text ILIKE ? OR LEFT(hull_number, 2) ILIKE ?",
			like, like, like, like,
		)
	}
	var orders []model.BoatOrder
	err := q.Find(&orders).Error
	return orders, err
}

// ── BoatOrderOption ──

type boatOrderOptionRepo struct {
	db *gorm.DB
}

func NewBoatOrderOptionRepo(db *gorm.DB) BoatOrderOptionRepository {
	return &boatOrderOptionRepo{db: db}
}

func (r *boatOrderOptionRepo) BatchCreate(ctx context.Context, options []model.BoatOrderOption) error {
	if len(options) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&options).Error
}

func (r *boatOrderOptionRepo) ListByOrder(ctx context.Context, orderID int64) ([]model.BoatOrderOption, error) {
	var options []model.BoatOrderOption
	err := r.db.WithContext(ctx).
		Where("boat_order_id = ?", orderID).
		Order("id ASC").
		Find(&options).Error
	return options, err
}

// ── BoatOrderHeader ──

type boatOrderHeaderRepo struct {
	db *gorm.DB
}

func NewBoatOrderHeaderRepo(db *gorm.DB) BoatOrderHeaderRepository {
	return &boatOrderHeaderRepo{db: db}
}

func (r *boatOrderHeaderRepo) Create(ctx context.Context, h *model.BoatOrderHeader) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *boatOrderHeaderRepo) BatchCreate(ctx context.Context, headers []model.BoatOrderHeader) error {
	if len(headers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&headers).Error
}

func (r *boatOrderHeaderRepo) GetByID(ctx context.Context, id int64) (*model.BoatOrderHeader, error) {
	var h model.BoatOrderHeader
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *boatOrderHeaderRepo) ListByModel(ctx context.Context, modelID int64) ([]model.BoatOrderHeader, error) {
	var headers []model.BoatOrderHeader
	err := r.db.WithContext(ctx).
		Where("model_id = ?", modelID).
		Order("id ASC").
		Find(&headers).Error
	return headers, err
}

func (r *boatOrderHeaderRepo) Update(ctx context.Context, h *model.BoatOrderHeader) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *boatOrderHeaderRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.BoatOrderHeader{}, id).Error
}
