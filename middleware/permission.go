package middleware

import (
	"egrow/database"
	"egrow/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that checks if the user carries the
// required role (runs after AuthMiddleware).
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", "user ID not found")
		}

		var user models.User
		err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", "user not found")
			}
			return ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err.Error())
		}

		if user.Role != requiredRole {
			return ErrorResponse(c, fiber.StatusForbidden, "Forbidden", "insufficient role")
		}

		return c.Next()
	}
}
