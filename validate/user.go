package validate

import (
	"github.com/gofiber/fiber/v2"

	"sistema_eventos/model"
)

func CreateUser() fiber.Handler {
	return body[model.UserCreateRequest]()
}

func UpdateUser() fiber.Handler {
	return body[model.UserUpdateRequest]()
}
