package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/colejunck1/Task-Tracker/internal/model"
)

// TaskPerHullRepository is the per-hull task data access interface.
// Tasks are never deleted, so no Delete is exposed.
type TaskPerHullRepository interface {
	BatchCreate(ctx context.Context, tasks []model.TaskPerHull) error
	GetByID(ctx context.Context, id int64) (*model.TaskPerHull, error)
	List(ctx context.Context, station, hullNumber string) ([]model.TaskPerHull, error)
	Update(ctx context.Context, t *model.TaskPerHull) error
}

type taskPerHullRepo struct {
	db *gorm.DB
}

func NewTaskPerHullRepo(db *gorm.DB) TaskPerHullRepository {
	return &taskPerHullRepo{db: db}
}

func (r *taskPerHullRepo) BatchCreate(ctx context.Context, tasks []model.TaskPerHull) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

func (r *taskPerHullRepo) GetByID(ctx context.Context, id int64) (*model.TaskPerHull, error) {
	var t model.TaskPerHull
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskPerHullRepo) List(ctx context.Context, station, hullNumber string) ([]model.TaskPerHull, error) {
	q := r.db.WithContext(ctx).Order("start_date ASC NULLS LAST, id ASC")
	if station != "" {
		q = q.Where("station = ?", station)
	}
	if hullNumber != "" {
		q = q.Where("hull_number = ?", hullNumber)
	}
	var tasks []model.TaskPerHull
	err := q.Find(&tasks).Error
	return tasks, err
}

func (r *taskPerHullRepo) Update(ctx context.Context, t *model.TaskPerHull) error {
	return r.db.WithContext(ctx).Save(t).Error
}
