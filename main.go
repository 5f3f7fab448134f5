package main

import (
	"log"

	"hbook/config"
	"hbook/database"
	authRoutes "hbook/routers/authRoutes"
	bookingRoutes "hbook/routers/bookingRoutes"
	hotelRoutes "hbook/routers/hotelRoutes"
	paymentRoutes "hbook/routers/paymentRoutes"
	"hbook/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	// The gateway client is built once here and handed to the payment
	// routes; a nil client keeps the gateway path disabled without
	// breaking the rest of the app.
	var gateway *utils.PayOSClient
	if config.AppConfig.GatewayConfigured() {
		gateway = utils.NewPayOSClient(
			config.AppConfig.PayOSClientID,
			config.AppConfig.PayOSAPIKey,
			config.AppConfig.PayOSChecksumKey,
		)
		log.Println("PayOS client initialized.")
	}

	authRoutes.SetupAuthRoutes(app)
	hotelRoutes.SetupHotelRoutes(app)
	bookingRoutes.SetupBookingRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app, gateway)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
