package validate

import (
	"github.com/gofiber/fiber/v2"

	"sistema_eventos/model"
)

func CreateEvent() fiber.Handler {
	return body[model.EventDTO]()
}

func UpdateEvent() fiber.Handler {
	return body[model.EventDTO]()
}
