package reviewValidator

import (
	"hbook/middleware"

	"github.com/gofiber/fiber/v2"
)

// ReviewRequest is the parsed review body handed to the controller
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// PostReview validator middleware
func PostReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Rating
		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		// Validate Comment
		if len(reqData.Comment) > 2000 {
			errors["comment"] = "Comment must be at most 2000 characters long!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated review to the next middleware
		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
