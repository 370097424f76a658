package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sistema_eventos/model"
	"sistema_eventos/service"
	"sistema_eventos/utils"
	"sistema_eventos/validate"
)

type TicketHandler struct {
	svc service.TicketService
}

func NewTicketHandler(svc service.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

func (h *TicketHandler) Register(r fiber.Router) {
	r.Get("/", h.GetTickets)
	// sub-recursos antes de /:id
	r.Get("/user/:userId", validate.GetById("userId"), h.GetTicketsByUserId)
	r.Get("/order/:orderId", validate.GetById("orderId"), h.GetTicketsByOrderId)
	r.Get("/:id", validate.GetById("id"), h.GetTicketById)
	r.Post("/", validate.CreateTicket(), h.CreateTicket)
	r.Put("/:id", validate.GetById("id"), validate.UpdateTicket(), h.UpdateTicket)
	r.Delete("/:id", validate.GetById("id"), h.DeleteTicket)
}

func (h *TicketHandler) GetTickets(c *fiber.Ctx) error {
	if q := c.Query("accessibility"); q != "" {
		accessibility, err := strconv.ParseBool(q)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Parâmetro accessibility inválido", err)
		}
		tickets, err := h.svc.GetByAccessibility(c.UserContext(), accessibility)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(tickets)
	}

	tickets, err := h.svc.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tickets)
}

func (h *TicketHandler) GetTicketById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uuid.UUID)

	ticket, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ticket)
}

func (h *TicketHandler) GetTicketsByUserId(c *fiber.Ctx) error {
	userID := c.Locals("inputId").(uuid.UUID)

	tickets, err := h.svc.GetByUserID(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tickets)
}

func (h *TicketHandler) GetTicketsByOrderId(c *fiber.Ctx) error {
	orderID := c.Locals("inputId").(uuid.UUID)

	tickets, err := h.svc.GetByOrderID(c.UserContext(), orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tickets)
}

func (h *TicketHandler) CreateTicket(c *fiber.Ctx) error {
	input := c.Locals("input").(model.TicketDTO)

	created, err := h.svc.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}

	c.Location("/api/tickets/" + created.ID.String())
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *TicketHandler) UpdateTicket(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uuid.UUID)
	input := c.Locals("input").(model.TicketDTO)

	updated, err := h.svc.Update(c.UserContext(), id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *TicketHandler) DeleteTicket(c *fiber.Ctx) error {
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
