package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates every entity repository.
type Repository struct {
	db *gorm.DB

	Model              ModelRepository
	Station            StationRepository
	TaskData           TaskDataRepository
	ScheduleGroup      ScheduleGroupRepository
	BoatOrder          BoatOrderRepository
	BoatOrderOption    BoatOrderOptionRepository
	BoatOrderHeader    BoatOrderHeaderRepository
	ModelOption        ModelOptionRepository
	DoNotShowOption    DoNotShowOptionRepository
	TaskPerHull        TaskPerHullRepository
	Holiday            HolidayRepository
	ProductionSchedule ProductionScheduleRepository
}

// NewRepository creates the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:                 db,
		Model:              NewModelRepo(db),
		Station:            NewStationRepo(db),
		TaskData:           NewTaskDataRepo(db),
		ScheduleGroup:      NewScheduleGroupRepo(db),
		BoatOrder:          NewBoatOrderRepo(db),
		BoatOrderOption:    NewBoatOrderOptionRepo(db),
		BoatOrderHeader:    NewBoatOrderHeaderRepo(db),
		ModelOption:        NewModelOptionRepo(db),
		DoNotShowOption:    NewDoNotShowOptionRepo(db),
		TaskPerHull:        NewTaskPerHullRepo(db),
		Holiday:            NewHolidayRepo(db),
		ProductionSchedule: NewProductionScheduleRepo(db),
	}
}

// BeginTx opens a database transaction. Aggregates assembled without a
// database (mock-backed) get a nil transaction and run non-atomically.
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx returns a repository aggregate bound to the given transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}
