package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sistema_eventos/model"
	"sistema_eventos/service"
	"sistema_eventos/utils"
	"sistema_eventos/validate"
)

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) Register(r fiber.Router) {
	// /relatorio antes de /:id para não casar como identificador
	r.Get("/relatorio", h.GetRelatorio)
	r.Get("/", h.GetEvents)
	r.Get("/:id", validate.GetById("id"), h.GetEventById)
	r.Post("/", validate.CreateEvent(), h.CreateEvent)
	r.Put("/:id", validate.GetById("id"), validate.UpdateEvent(), h.UpdateEvent)
	r.Delete("/:id", validate.GetById("id"), h.DeleteEvent)
}

func (h *EventHandler) GetEvents(c *fiber.Ctx) error {
	if q := c.Query("accessibility"); q != "" {
		accessibility, err := strconv.ParseBool(q)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Parâmetro accessibility inválido", err)
		}
		events, err := h.svc.GetByAccessibility(c.UserContext(), accessibility)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(events)
	}

	events, err := h.svc.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(events)
}

func (h *EventHandler) GetEventById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uuid.UUID)

	event, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(event)
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EventDTO)

	created, err := h.svc.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}

	c.Location("/api/events/" + created.ID.String())
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uuid.UUID)
	input := c.Locals("input").(model.EventDTO)

	updated, err := h.svc.Update(c.UserContext(), id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
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

func (h *EventHandler) GetRelatorio(c *fiber.Ctx) error {
	csv, err := h.svc.GetEventsReportCsv(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	filename := "eventos_" + time.Now().Format("20060102_150405") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(csv)
}
