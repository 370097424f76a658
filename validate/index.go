package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sistema_eventos/utils"
)

var validate = validator.New()

// GetById valida o parâmetro de rota como UUID e o guarda em Locals.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Identificador inválido", errors.New("params invalid"))
		}

		c.Locals("inputId", id)

		return c.Next()
	}
}

// body faz o parse do JSON, valida a forma com as tags e guarda o
// resultado em Locals("input"). As regras de negócio ficam no service.
func body[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input T
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dados inválidos", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("input", input)

		return c.Next()
	}
}
