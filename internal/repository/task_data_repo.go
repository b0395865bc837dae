package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/colejunck1/Task-Tracker/internal/model"
)

// TaskDataRepository is the master-task data access interface.
type TaskDataRepository interface {
	Create(ctx context.Context, t *model.TaskData) error
	BatchCreate(ctx context.Context, tasks []model.TaskData) error
	GetByID(ctx context.Context, id int64) (*model.TaskData, error)
	List(ctx context.Context, station string, modelID *int64) ([]model.TaskData, error)
	ListByModel(ctx context.Context, modelID int64) ([]model.TaskData, error)
	Update(ctx context.Context, t *model.TaskData) error
	Delete(ctx context.Context, id int64) error
}

type taskDataRepo struct {
	db *gorm.DB
}

func NewTaskDataRepo(db *gorm.DB) TaskDataRepository {
	return &taskDataRepo{db: db}
}

func (r *taskDataRepo) Create(ctx context.Context, t *model.TaskData) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *taskDataRepo) BatchCreate(ctx context.Context, tasks []model.TaskData) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

func (r *taskDataRepo) GetByID(ctx context.Context, id int64) (*model.TaskData, error) {
	var t model.TaskData
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskDataRepo) List(ctx context.Context, station string, modelID *int64) ([]model.TaskData, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if station != "" {
		q = q.Where("station = ?", station)
	}
	if modelID != nil {
		q = q.Where("model = ?", *modelID)
	}
	var tasks []model.TaskData
	err := q.Find(&tasks).Error
	return tasks, err
}

// ListByModel returns every master task for a model. This is the expansion
// step's read: no filtering beyond model equality.
func (r *taskDataRepo) ListByModel(ctx context.Context, modelID int64) ([]model.TaskData, error) {
	var tasks []model.TaskData
	err := r.db.WithContext(ctx).
		Where("model = ?", modelID).
		Order("id ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *taskDataRepo) Update(ctx context.Context, t *model.TaskData) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *taskDataRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.TaskData{}, id).Error
}
