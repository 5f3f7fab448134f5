package bookingRoutes

import (
	bookingController "hbook/controllers/booking"
	"hbook/middleware"
	bookingValidator "hbook/validators/booking"

	"github.com/gofiber/fiber/v2"
)

func SetupBookingRoutes(app *fiber.App) {
	bookingGroup := app.Group("/bookings")

	bookingGroup.Post("/room/:id", bookingValidator.CreateBooking(), middleware.JWTMiddleware, bookingController.CreateBooking)
	bookingGroup.Get("/my", middleware.JWTMiddleware, bookingController.MyBookings)
	bookingGroup.Post("/:id/cancel", middleware.JWTMiddleware, bookingController.CancelBooking)
}
