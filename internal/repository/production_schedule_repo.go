package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/colejunck1/Task-Tracker/internal/model"
)

// ProductionScheduleRepository is the production-schedule data access interface.
type ProductionScheduleRepository interface {
	Create(ctx context.Context, slot *model.ProductionScheduleSlot) error
	GetByID(ctx context.Context, id int64) (*model.ProductionScheduleSlot, error)
	List(ctx context.Context) ([]model.ProductionScheduleSlot, error)
	UpdateCell(ctx context.Context, id int64, column string, value *string) error
	Save(ctx context.Context, slot *model.ProductionScheduleSlot) error
	Delete(ctx context.Context, id int64) error
}

type productionScheduleRepo struct {
	db *gorm.DB
}

func NewProductionScheduleRepo(db *gorm.DB) ProductionScheduleRepository {
	return &productionScheduleRepo{db: db}
}

func (r *productionScheduleRepo) Create(ctx context.Context, slot *model.ProductionScheduleSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *productionScheduleRepo) GetByID(ctx context.Context, id int64) (*model.ProductionScheduleSlot, error) {
	var slot model.ProductionScheduleSlot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *productionScheduleRepo) List(ctx context.Context) ([]model.ProductionScheduleSlot, error) {
	var slots []model.ProductionScheduleSlot
	err := r.db.WithContext(ctx).Order("slot_number ASC, id ASC").Find(&slots).Error
	return slots, err
}

// UpdateCell writes a single column of a schedule row. The column must be
// one of the station date columns or a slot header field; anything else is
// rejected before touching the database. A nil value clears the cell.
func (r *productionScheduleRepo) UpdateCell(ctx context.Context, id int64, column string, value *string) error {
	if !model.IsStationDateColumn(column) && column != "slot_number" && column != "hull_number" {
		return fmt.Errorf("column %q is not an updatable schedule column", column)
	}
	var val interface{}
	if value != nil && *value != "" {
		val = *value
	}
	return r.db.WithContext(ctx).
		Model(&model.ProductionScheduleSlot{}).
		Where("id = ?", id).
		Update(column, val).Error
}

func (r *productionScheduleRepo) Save(ctx context.Context, slot *model.ProductionScheduleSlot) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *productionScheduleRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.ProductionScheduleSlot{}, id).Error
}
