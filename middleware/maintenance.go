package middleware

import (
	"egrow/config"
	"egrow/utils"

	"github.com/gofiber/fiber/v2"
)

// MaintenanceMiddleware gates all traffic behind the maintenance flag file.
// Allowed IPs and holders of the bypass key pass through.
func MaintenanceMiddleware(c *fiber.Ctx) error {
	if !utils.MaintenanceActive(config.AppConfig.MaintenanceFile) {
		return c.Next()
	}

	conf := utils.LoadMaintenanceConfig(config.AppConfig.MaintenanceConfFile)

	if conf.AllowsIP(c.IP()) {
		return c.Next()
	}
	if conf.BypassKey != "" && c.Get("X-Maintenance-Bypass") == conf.BypassKey {
		return c.Next()
	}

	reason := conf.Reason
	if reason == "" {
		reason = "Scheduled maintenance in progress"
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error":             "Service unavailable",
		"reason":            reason,
		"estimatedDuration": conf.EstimatedDuration,
	})
}
