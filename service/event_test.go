package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sistema_eventos/model"
	"sistema_eventos/repository"
	"sistema_eventos/utils"
)

func newEventService(t *testing.T) EventService {
	return NewEventService(repository.NewEventRepository(setupTestDB(t)))
}

func validEventDTO() model.EventDTO {
	return model.EventDTO{
		NameEvents:    "Show",
		Value:         decimal.NewFromInt(100),
		Date:          "2026-09-01",
		Time:          "20:00:00",
		Accessibility: utils.Ptr(true),
		LocationID:    uuid.New(),
	}
}

func TestEventCreate_GeraId(t *testing.T) {
	svc := newEventService(t)

	created, err := svc.Create(context.Background(), validEventDTO())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestEventCreate_CamposInvalidos(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.EventDTO)
	}{
		{"nome vazio", func(d *model.EventDTO) { d.NameEvents = "  " }},
		{"local nulo", func(d *model.EventDTO) { d.LocationID = uuid.Nil }},
		{"data malformada", func(d *model.EventDTO) { d.Date = "01/09/2026" }},
		{"hora malformada", func(d *model.EventDTO) { d.Time = "20h" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newEventService(t)
			dto := validEventDTO()
			tt.mutate(&dto)

			_, err := svc.Create(context.Background(), dto)

			var vErr *ValidationError
			assert.True(t, errors.As(err, &vErr))
		})
	}
}

func TestEventGetById_RoundTrip(t *testing.T) {
	svc := newEventService(t)

	dto := validEventDTO()
	created, err := svc.Create(context.Background(), dto)
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, dto.NameEvents, got.NameEvents)
	assert.True(t, dto.Value.Equal(got.Value))
	assert.Equal(t, dto.Date, got.Date)
	assert.Equal(t, dto.Time, got.Time)
	assert.Equal(t, *dto.Accessibility, *got.Accessibility)
	assert.Equal(t, dto.LocationID, got.LocationID)
}

func TestEventGetByAccessibility_Filtra(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(repository.NewEventRepository(db))

	acessivel := validEventDTO()
	created, err := svc.Create(context.Background(), acessivel)
	require.NoError(t, err)

	semFlag := validEventDTO()
	semFlag.NameEvents = "Teatro"
	semFlag.Accessibility = nil
	_, err = svc.Create(context.Background(), semFlag)
	require.NoError(t, err)

	naoAcessivel := validEventDTO()
	naoAcessivel.NameEvents = "Feira"
	naoAcessivel.Accessibility = utils.Ptr(false)
	_, err = svc.Create(context.Background(), naoAcessivel)
	require.NoError(t, err)

	events, err := svc.GetByAccessibility(context.Background(), true)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, created.ID, events[0].ID)
}

func TestEventUpdate_SubstituiTodosOsCampos(t *testing.T) {
	svc := newEventService(t)

	created, err := svc.Create(context.Background(), validEventDTO())
	require.NoError(t, err)

	novo := model.EventDTO{
		NameEvents:    "Festival",
		Value:         decimal.NewFromFloat(250.75),
		Date:          "2026-12-31",
		Time:          "22:30:00",
		Accessibility: utils.Ptr(false),
		LocationID:    uuid.New(),
	}

	updated, err := svc.Update(context.Background(), created.ID, novo)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Festival", updated.NameEvents)
	assert.Equal(t, "2026-12-31", updated.Date)
	assert.Equal(t, "22:30:00", updated.Time)
	assert.False(t, *updated.Accessibility)
	assert.Equal(t, novo.LocationID, updated.LocationID)
}

func TestEventUpdate_NaoEncontrado(t *testing.T) {
	svc := newEventService(t)

	_, err := svc.Update(context.Background(), uuid.New(), validEventDTO())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventDelete_DepoisGetByIdNaoEncontra(t *testing.T) {
	svc := newEventService(t)

	created, err := svc.Create(context.Background(), validEventDTO())
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
