package main

import (
	"log"

	"lingadmin/backend"
	"lingadmin/cache"
	"lingadmin/cascade"
	"lingadmin/config"
	"lingadmin/resources"
	accountRoutes "lingadmin/routers/accountRoutes"
	authRoutes "lingadmin/routers/authRoutes"
	catalogRoutes "lingadmin/routers/catalogRoutes"
	contentRoutes "lingadmin/routers/contentRoutes"
	"lingadmin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	api := backend.New(config.AppConfig.APIBaseURL, config.AppConfig.ReadRetryCount)
	store := cache.NewStore(config.AppConfig.CacheStaleTime)
	registry := resources.New(api, store)
	resolver := cascade.NewResolver(registry)

	utils.StartCacheSweeper(store)

	app := fiber.New(fiber.Config{
		BodyLimit: int(config.AppConfig.UploadMaxBytes),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app, registry)
	catalogRoutes.SetupCatalogRoutes(app, registry, resolver)
	contentRoutes.SetupContentRoutes(app, registry)
	accountRoutes.SetupAccountRoutes(app, registry)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
