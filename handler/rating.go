package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sistema_eventos/model"
	"sistema_eventos/service"
	"sistema_eventos/validate"
)

type RatingHandler struct {
	svc service.RatingService
}

func NewRatingHandler(svc service.RatingService) *RatingHandler {
	return &RatingHandler{svc: svc}
}

func (h *RatingHandler) Register(r fiber.Router) {
	r.Get("/", h.GetRatings)
	r.Get("/event/:eventId", validate.GetById("eventId"), h.GetRatingsByEventId)
	r.Get("/:id", validate.GetById("id"), h.GetRatingById)
	r.Post("/", validate.CreateRating(), h.CreateRating)
	r.Put("/:id", validate.GetById("id"), validate.UpdateRating(), h.UpdateRating)
	r.Delete("/:id", validate.GetById("id"), h.DeleteRating)
}

func (h *RatingHandler) GetRatings(c *fiber.Ctx) error {
	ratings, err := h.svc.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ratings)
}

func (h *RatingHandler) GetRatingById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uuid.UUID)

	rating, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rating)
}

func (h *RatingHandler) GetRatingsByEventId(c *fiber.Ctx) error {
	eventID := c.Locals("inputId").(uuid.UUID)

	ratings, err := h.svc.GetByEventID(c.UserContext(), eventID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ratings)
}

func (h *RatingHandler) CreateRating(c *fiber.Ctx) error {
	input := c.Locals("input").(model.RatingCreateRequest)

	created, err := h.svc.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}

	c.Location("/api/ratings/" + created.ID.String())
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *RatingHandler) UpdateRating(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uuid.UUID)
	input := c.Locals("input").(model.RatingCreateRequest)

	updated, err := h.svc.Update(c.UserContext(), id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *RatingHandler) DeleteRating(c *fiber.Ctx) error {
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
