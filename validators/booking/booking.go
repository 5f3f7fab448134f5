package bookingValidator

import (
	"time"

	"hbook/middleware"

	"github.com/gofiber/fiber/v2"
)

// DateFormat is the only accepted check-in/check-out date layout
const DateFormat = "2006-01-02"

// BookingRequest carries the parsed, validated stay dates
type BookingRequest struct {
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
}

// CreateBooking validator middleware. Parses the raw date strings and
// rejects unparseable dates and stays of zero or negative nights.
func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CheckIn  string `json:"checkIn"`
			CheckOut string `json:"checkOut"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		checkIn, err := time.Parse(DateFormat, reqData.CheckIn)
		if err != nil {
			errors["checkIn"] = "Check-in date must be in YYYY-MM-DD format!"
		}

		checkOut, err := time.Parse(DateFormat, reqData.CheckOut)
		if err != nil {
			errors["checkOut"] = "Check-out date must be in YYYY-MM-DD format!"
		}

		nights := 0
		if len(errors) == 0 {
			nights = int(checkOut.Sub(checkIn).Hours() / 24)
			if nights <= 0 {
				errors["checkOut"] = "Check-out date must be after the check-in date!"
			}
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated dates to the next middleware
		c.Locals("validatedBooking", &BookingRequest{
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Nights:   nights,
		})
		return c.Next()
	}
}
