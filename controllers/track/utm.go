package trackController

import (
	"egrow/database"
	"egrow/middleware"
	"egrow/models"
	"egrow/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RecordUTMVisit stores a UTM-attributed landing hit and forwards it to the
// external analytics collector in the background.
func RecordUTMVisit(c *fiber.Ctx) error {
	reqData := new(struct {
		Source   string `json:"utm_source"`
		Medium   string `json:"utm_medium"`
		Campaign string `json:"utm_campaign"`
		Content  string `json:"utm_content"`
		Path     string `json:"path"`
		Referrer string `json:"referrer"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "malformed request body")
	}
	if strings.TrimSpace(reqData.Source) == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "utm_source is required")
	}

	event := models.UTMEvent{
		Source:   reqData.Source,
		Medium:   reqData.Medium,
		Campaign: reqData.Campaign,
		Content:  reqData.Content,
		Path:     reqData.Path,
		Referrer: reqData.Referrer,
	}
	if userID, ok := c.Locals("userId").(uint); ok {
		event.UserID = &userID
	}

	if err := database.Database.Db.Create(&event).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err.Error())
	}

	go utils.ForwardUTMEvent(&event)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"recorded": true})
}
