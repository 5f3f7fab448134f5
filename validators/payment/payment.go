package paymentValidator

import (
	"hbook/middleware"
	"hbook/models"

	"github.com/gofiber/fiber/v2"
)

// PaymentRequest is the parsed payment body handed to the controller
type PaymentRequest struct {
	Method string `json:"method"`
}

// MakePayment validator middleware
func MakePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PaymentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Method
		if reqData.Method == "" {
			errors["method"] = "Payment method is required!"
		} else if reqData.Method != models.PaymentMethodCash && reqData.Method != models.PaymentMethodPayOS {
			errors["method"] = "Payment method must be 'cash' or 'payos'!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated payment request to the next middleware
		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
