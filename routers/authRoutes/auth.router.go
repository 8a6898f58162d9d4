package authRoutes

import (
	authController "egrow/controllers/auth"
	"egrow/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the authentication routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/signup", authController.Signup)
	authGroup.Post("/login", authController.Login)
	authGroup.Post("/logout", middleware.AuthMiddleware, authController.Logout)
}
