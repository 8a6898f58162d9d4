package courseValidator

import (
	"egrow/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SaveProgressRequest is the POST /api/courses/progress body
type SaveProgressRequest struct {
	CourseID         string `json:"courseId" validate:"required"`
	CurrentLesson    *int   `json:"currentLesson" validate:"omitempty,min=0"`
	CompletedLessons *[]int `json:"completedLessons" validate:"omitempty,dive,min=1"`
	LessonNumber     *int   `json:"lessonNumber" validate:"omitempty,min=1"`
	LessonID         string `json:"lessonId"`
	LessonTitle      string `json:"lessonTitle"`
	Action           string `json:"action" validate:"omitempty,oneof=access complete"`
	TimeSpent        int64  `json:"timeSpent" validate:"omitempty,min=0"`
}

// SaveProgress validates the progress-save body. Malformed lesson numbers are
// rejected here, before the handler performs any write.
func SaveProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SaveProgressRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "malformed request body")
		}

		if strings.TrimSpace(reqData.CourseID) == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "courseId is required")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err.Error())
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// GetProgress validates the courseId query parameter
func GetProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Query("courseId"))
		if courseID == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "courseId query parameter is required")
		}

		c.Locals("courseIdentifier", courseID)
		return c.Next()
	}
}
