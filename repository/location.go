package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sistema_eventos/model"
)

type LocationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Location, error)
	GetAll(ctx context.Context) ([]model.Location, error)
	Add(ctx context.Context, location *model.Location) error
	Update(ctx context.Context, location *model.Location) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Location, error) {
	var location model.Location
	err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) GetAll(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if err := r.db.WithContext(ctx).Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) Add(ctx context.Context, location *model.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) Update(ctx context.Context, location *model.Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	location, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if location == nil {
		return false, nil
	}
	if err := r.db.WithContext(ctx).Delete(location).Error; err != nil {
		return false, err
	}
	return true, nil
}
