package validate

import (
	"github.com/gofiber/fiber/v2"

	"sistema_eventos/model"
)

func CreateOrder() fiber.Handler {
	return body[model.OrderCreateRequest]()
}

func UpdateOrder() fiber.Handler {
	return body[model.OrderCreateRequest]()
}
