package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sistema_eventos/model"
	"sistema_eventos/service"
	"sistema_eventos/validate"
)

type LocationHandler struct {
	svc service.LocationService
}

func NewLocationHandler(svc service.LocationService) *LocationHandler {
	return &LocationHandler{svc: svc}
}

func (h *LocationHandler) Register(r fiber.Router) {
	r.Get("/", h.GetLocations)
	r.Get("/:id", validate.GetById("id"), h.GetLocationById)
	r.Post("/", validate.CreateLocation(), h.CreateLocation)
	r.Put("/:id", validate.GetById("id"), validate.UpdateLocation(), h.UpdateLocation)
	r.Delete("/:id", validate.GetById("id"), h.DeleteLocation)
}

func (h *LocationHandler) GetLocations(c *fiber.Ctx) error {
	locations, err := h.svc.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(locations)
}

func (h *LocationHandler) GetLocationById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uuid.UUID)

	location, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(location)
}

func (h *LocationHandler) CreateLocation(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LocationDTO)

	created, err := h.svc.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}

	c.Location("/api/locations/" + created.ID.String())
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *LocationHandler) UpdateLocation(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uuid.UUID)
	input := c.Locals("input").(model.LocationDTO)

	updated, err := h.svc.Update(c.UserContext(), id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *LocationHandler) DeleteLocation(c *fiber.Ctx) error {
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
