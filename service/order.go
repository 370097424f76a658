package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sistema_eventos/model"
	"sistema_eventos/repository"
)

var validPaymentTypes = []string{
	model.PaymentCreditCard,
	model.PaymentDebitCard,
	model.PaymentPix,
}

type OrderService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error)
	GetAll(ctx context.Context) ([]model.OrderResponse, error)
	Create(ctx context.Context, req model.OrderCreateRequest) (*model.OrderResponse, error)
	Update(ctx context.Context, id uuid.UUID, req model.OrderCreateRequest) (*model.OrderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	resp := orderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetAll(ctx context.Context) ([]model.OrderResponse, error) {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resps := make([]model.OrderResponse, 0, len(orders))
	for i := range orders {
		resps = append(resps, orderToResponse(&orders[i]))
	}
	return resps, nil
}

func (s *orderService) Create(ctx context.Context, req model.OrderCreateRequest) (*model.OrderResponse, error) {
	if err := validateOrderFields(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	userID := req.UserID
	order := &model.Order{
		ID:          uuid.New(),
		UserID:      &userID,
		Created:     &now,
		PaymentType: req.PaymentType,
		Status:      model.OrderStatusCreated,
		Value:       req.Value,
	}

	if err := s.repo.Add(ctx, order); err != nil {
		return nil, err
	}

	resp := orderToResponse(order)
	return &resp, nil
}

func (s *orderService) Update(ctx context.Context, id uuid.UUID, req model.OrderCreateRequest) (*model.OrderResponse, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}

	if err := validateOrderFields(req); err != nil {
		return nil, err
	}

	userID := req.UserID
	order.UserID = &userID
	order.PaymentType = req.PaymentType
	order.Value = req.Value

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	resp := orderToResponse(order)
	return &resp, nil
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func validateOrderFields(req model.OrderCreateRequest) error {
	if req.UserID == uuid.Nil {
		return invalidArgument("userId", "UserId inválido.")
	}
	if !req.Value.IsPositive() {
		return invalidArgument("value", "Valor deve ser maior que zero.")
	}
	for _, pt := range validPaymentTypes {
		if req.PaymentType == pt {
			return nil
		}
	}
	return invalidArgument("paymentType", "Tipo de pagamento inválido.")
}

func orderToResponse(order *model.Order) model.OrderResponse {
	resp := model.OrderResponse{
		ID:          order.ID,
		PaymentType: order.PaymentType,
		Status:      order.Status,
		Value:       order.Value,
	}
	if order.UserID != nil {
		resp.UserID = *order.UserID
	}
	if order.Created != nil {
		resp.CreatedAt = *order.Created
	}
	return resp
}
