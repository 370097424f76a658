package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sistema_eventos/model"
	"sistema_eventos/service"
	"sistema_eventos/validate"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Register(r fiber.Router) {
	r.Get("/", h.GetUsers)
	r.Get("/:id", validate.GetById("id"), h.GetUserById)
	r.Post("/", validate.CreateUser(), h.CreateUser)
	r.Put("/:id", validate.GetById("id"), validate.UpdateUser(), h.UpdateUser)
	r.Delete("/:id", validate.GetById("id"), h.DeleteUser)
}

func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.svc.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) GetUserById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uuid.UUID)

	user, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	input := c.Locals("input").(model.UserCreateRequest)

	created, err := h.svc.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}

	c.Location("/api/users/" + created.ID.String())
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uuid.UUID)
	input := c.Locals("input").(model.UserUpdateRequest)

	updated, err := h.svc.Update(c.UserContext(), id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
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
