package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/colejunck1/Task-Tracker/internal/model"
)

// StationRepository is the station data access interface.
type StationRepository interface {
	Create(ctx context.Context, s *model.Station) error
	BatchCreate(ctx context.Context, stations []model.Station) error
	GetByID(ctx context.Context, id int64) (*model.Station, error)
	List(ctx context.Context) ([]model.Station, error)
	Update(ctx context.Context, s *model.Station) error
	UpdateSequence(ctx context.Context, id int64, sequence int) error
	Delete(ctx context.Context, id int64) error
}

type stationRepo struct {
	db *gorm.DB
}

func NewStationRepo(db *gorm.DB) StationRepository {
	return &stationRepo{db: db}
}

func (r *stationRepo) Create(ctx context.Context, s *model.Station) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *stationRepo) BatchCreate(ctx context.Context, stations []model.Station) error {
	if len(stations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&stations).Error
}

func (r *stationRepo) GetByID(ctx context.Context, id int64) (*model.Station, error) {
	var s model.Station
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// List orders by station_sequence with name as tiebreaker; rows without a
// sequence sort last.
func (r *stationRepo) List(ctx context.Context) ([]model.Station, error) {
	var stations []model.Station
	err := r.db.WithContext(ctx).
		Order("station_sequence ASC NULLS LAST, name ASC").
		Find(&stations).Error
	return stations, err
}

func (r *stationRepo) Update(ctx context.Context, s *model.Station) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *stationRepo) UpdateSequence(ctx context.Context, id int64, sequence int) error {
	return r.db.WithContext(ctx).
		Model(&model.Station{}).
		Where("id = ?", id).
		Update("station_sequence", sequence).Error
}

func (r *stationRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Station{}, id).Error
}
