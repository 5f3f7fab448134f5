package hotelRoutes

import (
	hotelController "hbook/controllers/hotel"
	reviewController "hbook/controllers/review"
	"hbook/middleware"
	reviewValidator "hbook/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupHotelRoutes(app *fiber.App) {
	hotelGroup := app.Group("/hotels")

	// Public browsing
	hotelGroup.Get("/", hotelController.ListHotels)
	hotelGroup.Get("/rooms/:id", hotelController.RoomDetail)
	hotelGroup.Get("/:id", hotelController.HotelDetail)

	// Reviews
	hotelGroup.Post("/rooms/:id/reviews", reviewValidator.PostReview(), middleware.JWTMiddleware, reviewController.PostReview)
}
