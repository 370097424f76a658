package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sistema_eventos/model"
)

type RatingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Rating, error)
	GetAll(ctx context.Context) ([]model.Rating, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) ([]model.Rating, error)
	Add(ctx context.Context, rating *model.Rating) error
	Update(ctx context.Context, rating *model.Rating) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Rating, error) {
	var rating model.Rating
	err := r.db.WithContext(ctx).First(&rating, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetAll(ctx context.Context) ([]model.Rating, error) {
	var ratings []model.Rating
	if err := r.db.WithContext(ctx).Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]model.Rating, error) {
	var ratings []model.Rating
	if err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) Add(ctx context.Context, rating *model.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) Update(ctx context.Context, rating *model.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *ratingRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	rating, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if rating == nil {
		return false, nil
	}
	if err := r.db.WithContext(ctx).Delete(rating).Error; err != nil {
		return false, err
	}
	return true, nil
}
