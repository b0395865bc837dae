package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/colejunck1/Task-Tracker/internal/model"
)

// ModelOptionRepository is the per-model option catalog data access
// interface.
type ModelOptionRepository interface {
	Create(ctx context.Context, o *model.ModelOption) error
	BatchCreate(ctx context.Context, options []model.ModelOption) error
	GetByID(ctx context.Context, id int64) (*model.ModelOption, error)
	ListByModel(ctx context.Context, modelID int64) ([]model.ModelOption, error)
	Update(ctx context.Context, o *model.ModelOption) error
	Delete(ctx context.Context, id int64) error
}

// DoNotShowOptionRepository is the suppressed-option-line data access
// interface.
type DoNotShowOptionRepository interface {
	Create(ctx context.Context, o *model.DoNotShowOption) error
	BatchCreate(ctx context.Context, options []model.DoNotShowOption) error
	GetByID(ctx context.Context, id int64) (*model.DoNotShowOption, error)
	List(ctx context.Context) ([]model.DoNotShowOption, error)
	Update(ctx context.Context, o *model.DoNotShowOption) error
	Delete(ctx context.Context, id int64) error
}

// ── ModelOption ──

type modelOptionRepo struct {
	db *gorm.DB
}

func NewModelOptionRepo(db *gorm.DB) ModelOptionRepository {
	return &modelOptionRepo{db: db}
}

func (r *modelOptionRepo) Create(ctx context.Context, o *model.ModelOption) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *modelOptionRepo) BatchCreate(ctx context.Context, options []model.ModelOption) error {
	if len(options) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&options).Error
}

func (r *modelOptionRepo) GetByID(ctx context.Context, id int64) (*model.ModelOption, error) {
	var o model.ModelOption
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *modelOptionRepo) ListByModel(ctx context.Context, modelID int64) ([]model.ModelOption, error) {
	var options []model.ModelOption
	err := r.db.WithContext(ctx).
		Where("model_id = ?", modelID).
		Order("id ASC").
		Find(&options).Error
	return options, err
}

func (r *modelOptionRepo) Update(ctx context.Context, o *model.ModelOption) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *modelOptionRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.ModelOption{}, id).Error
}

// ── DoNotShowOption ──

type doNotShowOptionRepo struct {
	db *gorm.DB
}

func NewDoNotShowOptionRepo(db *gorm.DB) DoNotShowOptionRepository {
	return &doNotShowOptionRepo{db: db}
}

func (r *doNotShowOptionRepo) Create(ctx context.Context, o *model.DoNotShowOption) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *doNotShowOptionRepo) BatchCreate(ctx context.Context, options []model.DoNotShowOption) error {
	if len(options) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&options).Error
}

func (r *doNotShowOptionRepo) GetByID(ctx context.Context, id int64) (*model.DoNotShowOption, error) {
	var o model.DoNotShowOption
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *doNotShowOptionRepo) List(ctx context.Context) ([]model.DoNotShowOption, error) {
	var options []model.DoNotShowOption
	err := r.db.WithContext(ctx).Order("option_text ASC").Find(&options).Error
	return options, err
}

func (r *doNotShowOptionRepo) Update(ctx context.Context, o *model.DoNotShowOption) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *doNotShowOptionRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.DoNotShowOption{}, id).Error
}
