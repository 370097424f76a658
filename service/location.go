package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"sistema_eventos/model"
	"sistema_eventos/repository"
)

type LocationService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.LocationDTO, error)
	GetAll(ctx context.Context) ([]model.LocationDTO, error)
	Create(ctx context.Context, dto model.LocationDTO) (*model.LocationDTO, error)
	Update(ctx context.Context, id uuid.UUID, dto model.LocationDTO) (*model.LocationDTO, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type locationService struct {
	repo repository.LocationRepository
}

func NewLocationService(repo repository.LocationRepository) LocationService {
	return &locationService{repo: repo}
}

func (s *locationService) GetByID(ctx context.Context, id uuid.UUID) (*model.LocationDTO, error) {
	location, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrNotFound
	}
	dto := locationToDTO(location)
	return &dto, nil
}

func (s *locationService) GetAll(ctx context.Context) ([]model.LocationDTO, error) {
	locations, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]model.LocationDTO, 0, len(locations))
	for i := range locations {
		dtos = append(dtos, locationToDTO(&locations[i]))
	}
	return dtos, nil
}

func (s *locationService) Create(ctx context.Context, dto model.LocationDTO) (*model.LocationDTO, error) {
	if err := validateLocationFields(dto); err != nil {
		return nil, err
	}

	location := &model.Location{
		ID:       uuid.New(),
		Address:  dto.Address,
		Capacity: dto.Capacity,
	}

	if err := s.repo.Add(ctx, location); err != nil {
		return nil, err
	}

	created := locationToDTO(location)
	return &created, nil
}

func (s *locationService) Update(ctx context.Context, id uuid.UUID, dto model.LocationDTO) (*model.LocationDTO, error) {
	location, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrNotFound
	}

	if err := validateLocationFields(dto); err != nil {
		return nil, err
	}

	location.Address = dto.Address
	location.Capacity = dto.Capacity

	if err := s.repo.Update(ctx, location); err != nil {
		return nil, err
	}

	updated := locationToDTO(location)
	return &updated, nil
}

func (s *locationService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func validateLocationFields(dto model.LocationDTO) error {
	if strings.TrimSpace(dto.Address) == "" {
		return invalidArgument("address", "Endereço é obrigatório")
	}
	return nil
}

func locationToDTO(location *model.Location) model.LocationDTO {
	return model.LocationDTO{
		ID:       location.ID,
		Address:  location.Address,
		Capacity: location.Capacity,
	}
}
