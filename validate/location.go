package validate

import (
	"github.com/gofiber/fiber/v2"

	"sistema_eventos/model"
)

func CreateLocation() fiber.Handler {
	return body[model.LocationDTO]()
}

func UpdateLocation() fiber.Handler {
	return body[model.LocationDTO]()
}
