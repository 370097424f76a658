package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"sistema_eventos/model"
	"sistema_eventos/repository"
)

type RatingService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.RatingResponse, error)
	GetAll(ctx context.Context) ([]model.RatingResponse, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) ([]model.RatingResponse, error)
	Create(ctx context.Context, req model.RatingCreateRequest) (*model.RatingResponse, error)
	Update(ctx context.Context, id uuid.UUID, req model.RatingCreateRequest) (*model.RatingResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ratingService struct {
	repo repository.RatingRepository
}

func NewRatingService(repo repository.RatingRepository) RatingService {
	return &ratingService{repo: repo}
}

func (s *ratingService) GetByID(ctx context.Context, id uuid.UUID) (*model.RatingResponse, error) {
	rating, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, ErrNotFound
	}
	resp := ratingToResponse(rating)
	return &resp, nil
}

func (s *ratingService) GetAll(ctx context.Context) ([]model.RatingResponse, error) {
	ratings, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ratingsToResponse(ratings), nil
}

func (s *ratingService) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]model.RatingResponse, error) {
	if eventID == uuid.Nil {
		return nil, invalidArgument("eventId", "Invalid event ID")
	}
	ratings, err := s.repo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return ratingsToResponse(ratings), nil
}

func (s *ratingService) Create(ctx context.Context, req model.RatingCreateRequest) (*model.RatingResponse, error) {
	if err := validateRatingFields(req); err != nil {
		return nil, err
	}

	rating := &model.Rating{
		ID:      uuid.New(),
		UserID:  req.UserID,
		EventID: req.EventID,
		Score:   req.Score,
		Comment: req.Comment,
	}

	if err := s.repo.Add(ctx, rating); err != nil {
		return nil, err
	}

	resp := ratingToResponse(rating)
	return &resp, nil
}

func (s *ratingService) Update(ctx context.Context, id uuid.UUID, req model.RatingCreateRequest) (*model.RatingResponse, error) {
	rating, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, ErrNotFound
	}

	if err := validateRatingFields(req); err != nil {
		return nil, err
	}

	rating.UserID = req.UserID
	rating.EventID = req.EventID
	rating.Score = req.Score
	rating.Comment = req.Comment

	if err := s.repo.Update(ctx, rating); err != nil {
		return nil, err
	}

	resp := ratingToResponse(rating)
	return &resp, nil
}

func (s *ratingService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func validateRatingFields(req model.RatingCreateRequest) error {
	if req.UserID == uuid.Nil {
		return invalidArgument("userId", "Invalid user ID")
	}
	if req.EventID == uuid.Nil {
		return invalidArgument("eventId", "Invalid event ID")
	}
	if req.Score < 1 || req.Score > 5 {
		return invalidArgument("score", "Score must be between 1 and 5")
	}
	if strings.TrimSpace(req.Comment) == "" {
		return invalidArgument("comment", "Comment is required")
	}
	return nil
}

func ratingToResponse(rating *model.Rating) model.RatingResponse {
	return model.RatingResponse{
		ID:        rating.ID,
		UserID:    rating.UserID,
		EventID:   rating.EventID,
		Score:     rating.Score,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
	}
}

func ratingsToResponse(ratings []model.Rating) []model.RatingResponse {
	resps := make([]model.RatingResponse, 0, len(ratings))
	for i := range ratings {
		resps = append(resps, ratingToResponse(&ratings[i]))
	}
	return resps
}
