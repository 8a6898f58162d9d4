package middleware

import (
	"egrow/config"

	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// ErrorResponse writes the {error, details?} body used by the /api endpoints.
// details is only included outside production.
func ErrorResponse(c *fiber.Ctx, statusCode int, errMsg string, details string) error {
	body := fiber.Map{"error": errMsg}
	if details != "" && config.AppConfig != nil && !config.AppConfig.IsProduction() {
		body["details"] = details
	}
	return c.Status(statusCode).JSON(body)
}
