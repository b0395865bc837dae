package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/colejunck1/Task-Tracker/internal/model"
)

// ModelRepository is the boat-model data access interface.
type ModelRepository interface {
	Create(ctx context.Context, m *model.Model) error
	GetByID(ctx context.Context, id int64) (*model.Model, error)
	List(ctx context.Context) ([]model.Model, error)
	Update(ctx context.Context, m *model.Model) error
	Delete(ctx context.Context, id int64) error
}

type modelRepo struct {
	db *gorm.DB
}

func NewModelRepo(db *gorm.DB) ModelRepository {
	return &modelRepo{db: db}
}

func (r *modelRepo) Create(ctx context.Context, m *model.Model) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *modelRepo) GetByID(ctx context.Context, id int64) (*model.Model, error) {
	var m model.Model
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *modelRepo) List(ctx context.Context) ([]model.Model, error) {
	var models []model.Model
	err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error
	return models, err
}

func (r *modelRepo) Update(ctx context.Context, m *model.Model) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *modelRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Model{}, id).Error
}
