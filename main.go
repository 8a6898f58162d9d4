package main

import (
	"egrow/config"
	paymentController "egrow/controllers/payment"
	"egrow/database"
	"egrow/middleware"
	authRoutes "egrow/routers/authRoutes"
	courseRoutes "egrow/routers/courseRoutes"
	paymentRoutes "egrow/routers/paymentRoutes"
	publicRoutes "egrow/routers/publicRoutes"
	"egrow/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	paymentController.InitMidtrans()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,X-Maintenance-Bypass",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Maintenance gate sits in front of every route
	app.Use(middleware.MaintenanceMiddleware)

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminRoutes(app)
	publicRoutes.SetupPublicRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)

	utils.InitializeSchedulers()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
