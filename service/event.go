package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"sistema_eventos/model"
	"sistema_eventos/repository"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

type EventService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.EventDTO, error)
	GetAll(ctx context.Context) ([]model.EventDTO, error)
	GetByAccessibility(ctx context.Context, accessibility bool) ([]model.EventDTO, error)
	Create(ctx context.Context, dto model.EventDTO) (*model.EventDTO, error)
	Update(ctx context.Context, id uuid.UUID, dto model.EventDTO) (*model.EventDTO, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	GetEventsReportCsv(ctx context.Context) (string, error)
}

type eventService struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) GetByID(ctx context.Context, id uuid.UUID) (*model.EventDTO, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	dto := eventToDTO(event)
	return &dto, nil
}

func (s *eventService) GetAll(ctx context.Context) ([]model.EventDTO, error) {
	events, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return eventsToDTO(events), nil
}

func (s *eventService) GetByAccessibility(ctx context.Context, accessibility bool) ([]model.EventDTO, error) {
	events, err := s.repo.GetByAccessibility(ctx, accessibility)
	if err != nil {
		return nil, err
	}
	return eventsToDTO(events), nil
}

func (s *eventService) Create(ctx context.Context, dto model.EventDTO) (*model.EventDTO, error) {
	date, err := validateEventFields(dto)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		ID:            uuid.New(),
		NameEvents:    dto.NameEvents,
		Value:         dto.Value,
		Date:          date,
		Time:          dto.Time,
		Accessibility: dto.Accessibility,
		LocationID:    dto.LocationID,
	}

	if err := s.repo.Add(ctx, event); err != nil {
		return nil, err
	}

	created := eventToDTO(event)
	return &created, nil
}

// Update substitui todos os campos do DTO, revalidando como no create.
func (s *eventService) Update(ctx context.Context, id uuid.UUID, dto model.EventDTO) (*model.EventDTO, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}

	date, err := validateEventFields(dto)
	if err != nil {
		return nil, err
	}

	event.NameEvents = dto.NameEvents
	event.Value = dto.Value
	event.Date = date
	event.Time = dto.Time
	event.Accessibility = dto.Accessibility
	event.LocationID = dto.LocationID

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}

	updated := eventToDTO(event)
	return &updated, nil
}

func (s *eventService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *eventService) GetEventsReportCsv(ctx context.Context) (string, error) {
	return s.repo.GetEventsReportCsv(ctx)
}

func validateEventFields(dto model.EventDTO) (time.Time, error) {
	if strings.TrimSpace(dto.NameEvents) == "" {
		return time.Time{}, invalidArgument("nameEvents", "Nome do evento é obrigatório")
	}
	if dto.LocationID == uuid.Nil {
		return time.Time{}, invalidArgument("locationId", "LocationId inválido")
	}
	date, err := time.Parse(dateLayout, dto.Date)
	if err != nil {
		return time.Time{}, invalidArgument("date", "Data inválida, use o formato 2006-01-02")
	}
	if _, err := time.Parse(timeLayout, dto.Time); err != nil {
		return time.Time{}, invalidArgument("time", "Hora inválida, use o formato 15:04:05")
	}
	return date, nil
}

func eventToDTO(event *model.Event) model.EventDTO {
	return model.EventDTO{
		ID:            event.ID,
		NameEvents:    event.NameEvents,
		Value:         event.Value,
		Date:          event.Date.Format(dateLayout),
		Time:          event.Time,
		Accessibility: event.Accessibility,
		LocationID:    event.LocationID,
	}
}

func eventsToDTO(events []model.Event) []model.EventDTO {
	dtos := make([]model.EventDTO, 0, len(events))
	for i := range events {
		dtos = append(dtos, eventToDTO(&events[i]))
	}
	return dtos
}
