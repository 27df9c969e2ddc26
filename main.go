package main

import (
	"log"

	"club_cinema/config"
	"club_cinema/database"
	"club_cinema/helper"
	"club_cinema/middleware"
	"club_cinema/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // poster uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis()
	middleware.InitSessionStore()

	helper.StartUploadSweep()
	helper.StartDigestScheduler()

	router.SetupRoutes(app)

	err := app.Listen(config.Config("APP_ADDR"))

	helper.StopUploadSweep()
	helper.StopDigestScheduler()
	if err != nil {
		log.Fatal(err)
	}
}
