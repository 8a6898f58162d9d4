package paymentRoutes

import (
	paymentController "egrow/controllers/payment"
	"egrow/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up checkout and the processor webhook
func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/api/payments")

	paymentGroup.Post("/checkout", middleware.AuthMiddleware, paymentController.Checkout)
	paymentGroup.Get("/history", middleware.AuthMiddleware, paymentController.GetPaymentHistory)

	// Called by the payment processor, not by browsers
	paymentGroup.Post("/webhook", paymentController.Webhook)
}
