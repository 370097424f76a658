package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"sistema_eventos/config"
	"sistema_eventos/database"
	"sistema_eventos/handler"
	"sistema_eventos/repository"
	"sistema_eventos/router"
	"sistema_eventos/service"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	dsn := config.Config("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL não configurada")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("Falha ao conectar banco de dados: %v", err)
	}

	handlers := router.Handlers{
		Event:    handler.NewEventHandler(service.NewEventService(repository.NewEventRepository(db))),
		Location: handler.NewLocationHandler(service.NewLocationService(repository.NewLocationRepository(db))),
		User:     handler.NewUserHandler(service.NewUserService(repository.NewUserRepository(db))),
		Order:    handler.NewOrderHandler(service.NewOrderService(repository.NewOrderRepository(db))),
		Ticket:   handler.NewTicketHandler(service.NewTicketService(repository.NewTicketRepository(db))),
		Rating:   handler.NewRatingHandler(service.NewRatingService(repository.NewRatingRepository(db))),
	}

	router.SetupRoutes(app, handlers)

	port := config.Config("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(app.Listen(":" + port))
}
