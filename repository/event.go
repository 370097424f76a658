package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sistema_eventos/model"
)

type EventRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	GetAll(ctx context.Context) ([]model.Event, error)
	GetByAccessibility(ctx context.Context, accessibility bool) ([]model.Event, error)
	Add(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	GetEventsReportCsv(ctx context.Context) (string, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) GetByAccessibility(ctx context.Context, accessibility bool) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Where("accessibility = ?", accessibility).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Add(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	event, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if event == nil {
		return false, nil
	}
	if err := r.db.WithContext(ctx).Delete(event).Error; err != nil {
		return false, err
	}
	return true, nil
}

// GetEventsReportCsv gera o relatório CSV com todos os eventos.
// Acessibilidade sai como Sim/Não/N/A e o valor com duas casas decimais.
func (r *eventRepository) GetEventsReportCsv(ctx context.Context) (string, error) {
	events, err := r.GetAll(ctx)
	if err != nil {
		return "", err
	}

	var csv strings.Builder
	// Cabeçalho
	csv.WriteString("ID,Nome,Valor,Data,Hora,Acessibilidade,LocalizacaoID\n")

	for _, evt := range events {
		accessibility := "N/A"
		if evt.Accessibility != nil {
			if *evt.Accessibility {
				accessibility = "Sim"
			} else {
				accessibility = "Não"
			}
		}
		csv.WriteString("\"" + evt.ID.String() + "\",")
		csv.WriteString("\"" + escapeCsv(evt.NameEvents) + "\",")
		csv.WriteString(evt.Value.StringFixed(2) + ",")
		csv.WriteString(evt.Date.Format("2006-01-02") + ",")
		csv.WriteString(evt.Time + ",")
		csv.WriteString(accessibility + ",")
		csv.WriteString("\"" + evt.LocationID.String() + "\"\n")
	}

	return csv.String(), nil
}

// escapeCsv escapa aspas com barra invertida, apenas quando o texto
// contém vírgula, aspas ou quebra de linha.
func escapeCsv(value string) string {
	if value == "" {
		return ""
	}
	if strings.ContainsAny(value, ",\"\n") {
		return strings.ReplaceAll(value, `"`, `\"`)
	}
	return value
}
