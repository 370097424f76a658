package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"sistema_eventos/handler"
)

type Handlers struct {
	Event    *handler.EventHandler
	Location *handler.LocationHandler
	User     *handler.UserHandler
	Order    *handler.OrderHandler
	Ticket   *handler.TicketHandler
	Rating   *handler.RatingHandler
}

func SetupRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api", logger.New())

	h.Event.Register(api.Group("/events"))
	h.Location.Register(api.Group("/locations"))
	h.User.Register(api.Group("/users"))
	h.Order.Register(api.Group("/orders"))
	h.Ticket.Register(api.Group("/tickets"))
	h.Rating.Register(api.Group("/ratings"))
}
