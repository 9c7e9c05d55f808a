package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"

	"restaurant_manager/config"
	"restaurant_manager/database"
	"restaurant_manager/events"
	"restaurant_manager/handler"
	"restaurant_manager/helper"
	"restaurant_manager/router"
	"restaurant_manager/store"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("FRONTEND_URL", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	database.ConnectDB()

	rdb := redis.NewClient(&redis.Options{Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379")})
	pub := events.NewRedisPublisher(rdb)
	hub := events.NewHub()
	hub.Run(rdb)

	handler.Setup(database.DB, pub, hub)

	helper.StartCleanupScheduler(store.NewServiceCallStore(database.DB))
	defer helper.StopCleanupScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8002")))
}
