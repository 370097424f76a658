package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sistema_eventos/model"
)

type TicketRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error)
	GetAll(ctx context.Context) ([]model.Ticket, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Ticket, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.Ticket, error)
	GetByAccessibility(ctx context.Context, accessibility bool) ([]model.Ticket, error)
	Add(ctx context.Context, ticket *model.Ticket) error
	Update(ctx context.Context, ticket *model.Ticket) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error) {
	var ticket model.Ticket
	err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) GetAll(ctx context.Context) ([]model.Ticket, error) {
	var tickets []model.Ticket
	if err := r.db.WithContext(ctx).Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Ticket, error) {
	var tickets []model.Ticket
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.Ticket, error) {
	var tickets []model.Ticket
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) GetByAccessibility(ctx context.Context, accessibility bool) ([]model.Ticket, error) {
	var tickets []model.Ticket
	if err := r.db.WithContext(ctx).Where("accessibility = ?", accessibility).Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) Add(ctx context.Context, ticket *model.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *ticketRepository) Update(ctx context.Context, ticket *model.Ticket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

func (r *ticketRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ticket, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if ticket == nil {
		return false, nil
	}
	if err := r.db.WithContext(ctx).Delete(ticket).Error; err != nil {
		return false, err
	}
	return true, nil
}
