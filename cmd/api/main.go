package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"valia_backend/internal/controller"
	"valia_backend/internal/dataclient"
	"valia_backend/internal/report"
	"valia_backend/pkg/config"
	"valia_backend/pkg/seed"
	"valia_backend/pkg/store"
)

func main() {
	cfg := config.Load()

	st := store.Open(cfg.Data.DatabasePath)
	defer st.Close()

	client, err := dataclient.New(dataclient.Mode(cfg.Data.Mode), dataclient.Options{
		Store:   st,
		Seeds:   seed.Fixtures(),
		BaseURL: cfg.Data.RestBaseURL,
	})
	if err != nil {
		log.Fatal("Could not build data client:", err)
	}

	reports := report.NewService(client)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	controller.RegisterRoutes(app, client, st, reports)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
