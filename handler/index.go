package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sistema_eventos/service"
	"sistema_eventos/utils"
)

// respondError traduz os tipos de erro do service para HTTP:
// ValidationError vira 400 com a mensagem, ErrNotFound vira 404 com
// corpo vazio e qualquer outro erro vira 500 genérico.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, vErr.Message, nil)
	}
	if errors.Is(err, service.ErrNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor", nil)
}
