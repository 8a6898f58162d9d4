package controllers

import (
	"egrow/database"
	"egrow/middleware"
	"egrow/models"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetResources lists published resources, optionally filtered by category
func GetResources(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Where("is_deleted = ? AND is_published = ?", false, true)
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		query = query.Where("category = ?", category)
	}

	var resources []models.Resource
	if err := query.Order("created_at desc").Find(&resources).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"resources": resources})
}

// AccessResource returns a resource and whether the caller may download it.
// Gated resources require a valid bearer token; each satisfied access is
// logged and counted.
func AccessResource(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "resource slug is required")
	}

	db := database.Database.Db

	var resource models.Resource
	if err := db.Where("slug = ? AND is_deleted = ?", slug, false).First(&resource).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Resource not found", "")
	}

	if !resource.RequiresAuth {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"resource":  resource,
			"canAccess": true,
		})
	}

	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":        "Unauthorized",
			"requiresAuth": true,
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		accessLog := models.ResourceAccessLog{
			ResourceID: resource.ID,
			UserID:     userID,
			AccessedAt: time.Now(),
			IP:         c.IP(),
		}
		if err := tx.Create(&accessLog).Error; err != nil {
			return err
		}
		return tx.Model(&models.Resource{}).Where("id = ?", resource.ID).
			UpdateColumn("downloads_count", gorm.Expr("downloads_count + ?", 1)).Error
	})
	if err != nil {
		log.Printf("[RESOURCE] Failed to log access for %s: %v", resource.Slug, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err.Error())
	}
	resource.DownloadsCount++

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"resource":  resource,
		"canAccess": true,
	})
}
