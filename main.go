package main

import (
	"log"

	"tour_manager/cache"
	"tour_manager/database"
	"tour_manager/helper"
	"tour_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173/",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	database.ConnectDB()
	cache.ConnectRedis()

	helper.StartTourStatusScheduler()
	defer helper.StopTourStatusScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
