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

func newTicketService(t *testing.T) TicketService {
	return NewTicketService(repository.NewTicketRepository(setupTestDB(t)))
}

func validTicketDTO() model.TicketDTO {
	return model.TicketDTO{
		OrderID:       utils.Ptr(uuid.New()),
		UserID:        utils.Ptr(uuid.New()),
		EventID:       utils.Ptr(uuid.New()),
		Quantity:      2,
		Value:         decimal.NewFromFloat(75.90),
		Date:          "2026-09-01",
		Time:          "20:00:00",
		TicketType:    utils.Ptr("Inteira"),
		Accessibility: utils.Ptr(false),
	}
}

func TestTicketCreate_GeraIdERoundTrip(t *testing.T) {
	svc := newTicketService(t)

	dto := validTicketDTO()
	created, err := svc.Create(context.Background(), dto)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, *dto.OrderID, *got.OrderID)
	assert.Equal(t, *dto.UserID, *got.UserID)
	assert.Equal(t, *dto.EventID, *got.EventID)
	assert.Equal(t, dto.Quantity, got.Quantity)
	assert.True(t, dto.Value.Equal(got.Value))
	assert.Equal(t, dto.Date, got.Date)
	assert.Equal(t, dto.Time, got.Time)
	assert.Equal(t, "Inteira", *got.TicketType)
	assert.False(t, *got.Accessibility)
}

func TestTicketCreate_ReferenciasOpcionais(t *testing.T) {
	svc := newTicketService(t)

	dto := validTicketDTO()
	dto.OrderID = nil
	dto.UserID = nil
	dto.EventID = nil

	created, err := svc.Create(context.Background(), dto)
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Nil(t, got.OrderID)
	assert.Nil(t, got.UserID)
	assert.Nil(t, got.EventID)
}

func TestTicketCreate_DataOuHoraInvalida(t *testing.T) {
	for _, mutate := range []func(*model.TicketDTO){
		func(d *model.TicketDTO) { d.Date = "2026/09/01" },
		func(d *model.TicketDTO) { d.Time = "8pm" },
	} {
		svc := newTicketService(t)
		dto := validTicketDTO()
		mutate(&dto)

		_, err := svc.Create(context.Background(), dto)

		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr))
	}
}

func TestTicketGetByUserId_Filtra(t *testing.T) {
	svc := newTicketService(t)

	dto := validTicketDTO()
	created, err := svc.Create(context.Background(), dto)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validTicketDTO())
	require.NoError(t, err)

	tickets, err := svc.GetByUserID(context.Background(), *dto.UserID)
	require.NoError(t, err)

	require.Len(t, tickets, 1)
	assert.Equal(t, created.ID, tickets[0].ID)
}

func TestTicketGetByOrderId_Filtra(t *testing.T) {
	svc := newTicketService(t)

	dto := validTicketDTO()
	created, err := svc.Create(context.Background(), dto)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validTicketDTO())
	require.NoError(t, err)

	tickets, err := svc.GetByOrderID(context.Background(), *dto.OrderID)
	require.NoError(t, err)

	require.Len(t, tickets, 1)
	assert.Equal(t, created.ID, tickets[0].ID)
}

func TestTicketUpdate_SubstituiListaCompletaDeCampos(t *testing.T) {
	svc := newTicketService(t)

	created, err := svc.Create(context.Background(), validTicketDTO())
	require.NoError(t, err)

	novo := validTicketDTO()
	novo.Quantity = 5
	novo.TicketType = utils.Ptr("Meia")

	updated, err := svc.Update(context.Background(), created.ID, novo)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, *novo.OrderID, *updated.OrderID)
	assert.Equal(t, *novo.UserID, *updated.UserID)
	assert.Equal(t, *novo.EventID, *updated.EventID)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, "Meia", *updated.TicketType)
}

func TestTicketDelete_DepoisGetByIdNaoEncontra(t *testing.T) {
	svc := newTicketService(t)

	created, err := svc.Create(context.Background(), validTicketDTO())
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
