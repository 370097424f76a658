package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sistema_eventos/model"
	"sistema_eventos/service"
	"sistema_eventos/validate"
)

type OrderHandler struct {
	svc service.OrderService
}

func NewOrderHandler(svc service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) Register(r fiber.Router) {
	r.Get("/", h.GetOrders)
	r.Get("/:id", validate.GetById("id"), h.GetOrderById)
	r.Post("/", validate.CreateOrder(), h.CreateOrder)
	r.Put("/:id", validate.GetById("id"), validate.UpdateOrder(), h.UpdateOrder)
	r.Delete("/:id", validate.GetById("id"), h.DeleteOrder)
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.svc.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) GetOrderById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uuid.UUID)

	order, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	input := c.Locals("input").(model.OrderCreateRequest)

	created, err := h.svc.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}

	c.Location("/api/orders/" + created.ID.String())
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uuid.UUID)
	input := c.Locals("input").(model.OrderCreateRequest)

	updated, err := h.svc.Update(c.UserContext(), id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uuid.UUID)

	deleted, err := h.svc.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
