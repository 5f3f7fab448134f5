package paymentRoutes

import (
	paymentController "hbook/controllers/payment"
	"hbook/middleware"
	"hbook/utils"
	paymentValidator "hbook/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App, gateway *utils.PayOSClient) {
	controller := paymentController.New(gateway)

	paymentGroup := app.Group("/payments")

	paymentGroup.Post("/booking/:id", paymentValidator.MakePayment(), middleware.JWTMiddleware, controller.MakePayment)

	// The webhook answers non-POST itself so the 405 carries the provider
	// JSON envelope instead of fiber's default page.
	paymentGroup.All("/webhook", controller.Webhook)

	paymentGroup.Get("/return", controller.PaymentReturn)
	paymentGroup.Get("/cancel", controller.PaymentCancel)
}
