package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/colejunck1/Task-Tracker/internal/model"
)

// ScheduleGroupRepository is the schedule-group data access interface.
type ScheduleGroupRepository interface {
	Create(ctx context.Context, g *model.ScheduleGroup) error
	BatchCreate(ctx context.Context, groups []model.ScheduleGroup) error
	GetByID(ctx context.Context, id int64) (*model.ScheduleGroup, error)
	List(ctx context.Context) ([]model.ScheduleGroup, error)
	Update(ctx context.Context, g *model.ScheduleGroup) error
	Delete(ctx context.Context, id int64) error
	DeleteByIDs(ctx context.Context, ids []int64) error
}

type scheduleGroupRepo struct {
	db *gorm.DB
}

func NewScheduleGroupRepo(db *gorm.DB) ScheduleGroupRepository {
	return &scheduleGroupRepo{db: db}
}

func (r *scheduleGroupRepo) Create(ctx context.Context, g *model.ScheduleGroup) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *scheduleGroupRepo) BatchCreate(ctx context.Context, groups []model.ScheduleGroup) error {
	if len(groups) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&groups).Error
}

func (r *scheduleGroupRepo) GetByID(ctx context.Context, id int64) (*model.ScheduleGroup, error) {
	var g model.ScheduleGroup
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *scheduleGroupRepo) List(ctx context.Context) ([]model.ScheduleGroup, error) {
	var groups []model.ScheduleGroup
	err := r.db.WithContext(ctx).Order("schedule_group ASC").Find(&groups).Error
	return groups, err
}

func (r *scheduleGroupRepo) Update(ctx context.Context, g *model.ScheduleGroup) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *scheduleGroupRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.ScheduleGroup{}, id).Error
}

func (r *scheduleGroupRepo) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&model.ScheduleGroup{}, "id IN ?", ids).Error
}
