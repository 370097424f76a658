package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sistema_eventos/model"
	"sistema_eventos/repository"
)

type TicketService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.TicketDTO, error)
	GetAll(ctx context.Context) ([]model.TicketDTO, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.TicketDTO, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.TicketDTO, error)
	GetByAccessibility(ctx context.Context, accessibility bool) ([]model.TicketDTO, error)
	Create(ctx context.Context, dto model.TicketDTO) (*model.TicketDTO, error)
	Update(ctx context.Context, id uuid.UUID, dto model.TicketDTO) (*model.TicketDTO, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ticketService struct {
	repo repository.TicketRepository
}

func NewTicketService(repo repository.TicketRepository) TicketService {
	return &ticketService{repo: repo}
}

func (s *ticketService) GetByID(ctx context.Context, id uuid.UUID) (*model.TicketDTO, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrNotFound
	}
	dto := ticketToDTO(ticket)
	return &dto, nil
}

func (s *ticketService) GetAll(ctx context.Context) ([]model.TicketDTO, error) {
	tickets, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ticketsToDTO(tickets), nil
}

func (s *ticketService) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.TicketDTO, error) {
	tickets, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ticketsToDTO(tickets), nil
}

func (s *ticketService) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.TicketDTO, error) {
	tickets, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return ticketsToDTO(tickets), nil
}

func (s *ticketService) GetByAccessibility(ctx context.Context, accessibility bool) ([]model.TicketDTO, error) {
	tickets, err := s.repo.GetByAccessibility(ctx, accessibility)
	if err != nil {
		return nil, err
	}
	return ticketsToDTO(tickets), nil
}

func (s *ticketService) Create(ctx context.Context, dto model.TicketDTO) (*model.TicketDTO, error) {
	date, err := validateTicketFields(dto)
	if err != nil {
		return nil, err
	}

	ticket := &model.Ticket{
		ID:            uuid.New(),
		OrderID:       dto.OrderID,
		UserID:        dto.UserID,
		EventID:       dto.EventID,
		Quantity:      dto.Quantity,
		Value:         dto.Value,
		Date:          date,
		Time:          dto.Time,
		TicketType:    dto.TicketType,
		Accessibility: dto.Accessibility,
	}

	if err := s.repo.Add(ctx, ticket); err != nil {
		return nil, err
	}

	created := ticketToDTO(ticket)
	return &created, nil
}

// Update substitui order/user/event/quantity/value/date/time/type/
// accessibility — a lista completa de campos do DTO.
func (s *ticketService) Update(ctx context.Context, id uuid.UUID, dto model.TicketDTO) (*model.TicketDTO, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrNotFound
	}

	date, err := validateTicketFields(dto)
	if err != nil {
		return nil, err
	}

	ticket.OrderID = dto.OrderID
	ticket.UserID = dto.UserID
	ticket.EventID = dto.EventID
	ticket.Quantity = dto.Quantity
	ticket.Value = dto.Value
	ticket.Date = date
	ticket.Time = dto.Time
	ticket.TicketType = dto.TicketType
	ticket.Accessibility = dto.Accessibility

	if err := s.repo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	updated := ticketToDTO(ticket)
	return &updated, nil
}

func (s *ticketService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func validateTicketFields(dto model.TicketDTO) (time.Time, error) {
	date, err := time.Parse(dateLayout, dto.Date)
	if err != nil {
		return time.Time{}, invalidArgument("date", "Data inválida, use o formato 2006-01-02")
	}
	if _, err := time.Parse(timeLayout, dto.Time); err != nil {
		return time.Time{}, invalidArgument("time", "Hora inválida, use o formato 15:04:05")
	}
	return date, nil
}

func ticketToDTO(ticket *model.Ticket) model.TicketDTO {
	return model.TicketDTO{
		ID:            ticket.ID,
		OrderID:       ticket.OrderID,
		UserID:        ticket.UserID,
		EventID:       ticket.EventID,
		Quantity:      ticket.Quantity,
		Value:         ticket.Value,
		Date:          ticket.Date.Format(dateLayout),
		Time:          ticket.Time,
		TicketType:    ticket.TicketType,
		Accessibility: ticket.Accessibility,
	}
}

func ticketsToDTO(tickets []model.Ticket) []model.TicketDTO {
	dtos := make([]model.TicketDTO, 0, len(tickets))
	for i := range tickets {
		dtos = append(dtos, ticketToDTO(&tickets[i]))
	}
	return dtos
}
