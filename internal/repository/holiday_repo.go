package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/colejunck1/Task-Tracker/internal/model"
)

// HolidayRepository is the company-holiday data access interface.
type HolidayRepository interface {
	Create(ctx context.Context, h *model.CompanyHoliday) error
	BatchCreate(ctx context.Context, holidays []model.CompanyHoliday) error
	GetByID(ctx context.Context, id int64) (*model.CompanyHoliday, error)
	List(ctx context.Context) ([]model.CompanyHoliday, error)
	ExistsOnDate(ctx context.Context, date time.Time) (bool, error)
	Update(ctx context.Context, h *model.CompanyHoliday) error
	Delete(ctx context.Context, id int64) error
}

type holidayRepo struct {
	db *gorm.DB
}

func NewHolidayRepo(db *gorm.DB) HolidayRepository {
	return &holidayRepo{db: db}
}

func (r *holidayRepo) Create(ctx context.Context, h *model.CompanyHoliday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *holidayRepo) BatchCreate(ctx context.Context, holidays []model.CompanyHoliday) error {
	if len(holidays) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&holidays).Error
}

func (r *holidayRepo) GetByID(ctx context.Context, id int64) (*model.CompanyHoliday, error) {
	var h model.CompanyHoliday
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *holidayRepo) List(ctx context.Context) ([]model.CompanyHoliday, error) {
	var holidays []model.CompanyHoliday
	err := r.db.WithContext(ctx).Order("holiday_date ASC").Find(&holidays).Error
	return holidays, err
}

func (r *holidayRepo) ExistsOnDate(ctx context.Context, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CompanyHoliday{}).
		Where("holiday_date = ?", date.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func (r *holidayRepo) Update(ctx context.Context, h *model.CompanyHoliday) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *holidayRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.CompanyHoliday{}, id).Error
}
