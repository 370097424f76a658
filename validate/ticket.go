package validate

import (
	"github.com/gofiber/fiber/v2"

	"sistema_eventos/model"
)

func CreateTicket() fiber.Handler {
	return body[model.TicketDTO]()
}

func UpdateTicket() fiber.Handler {
	return body[model.TicketDTO]()
}
