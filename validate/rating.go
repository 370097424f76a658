package validate

import (
	"github.com/gofiber/fiber/v2"

	"sistema_eventos/model"
)

func CreateRating() fiber.Handler {
	return body[model.RatingCreateRequest]()
}

func UpdateRating() fiber.Handler {
	return body[model.RatingCreateRequest]()
}
