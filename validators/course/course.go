package courseValidator

import (
	"egrow/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CourseList validates pagination query parameters for the catalog listing
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Page == nil && reqData.Limit == nil {
			return c.Next() // unpaginated listing
		}

		errors := make(map[string]string)
		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && (*reqData.Limit < 1 || *reqData.Limit > 100) {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// CourseParam validates the :id path parameter (numeric primary key)
func CourseParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "course ID is required")
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "course ID must be a positive integer")
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// AdminCourseRequest is the create/update body for the admin course endpoints
type AdminCourseRequest struct {
	Slug         string `json:"slug" validate:"required,min=2"`
	Title        string `json:"title" validate:"required,min=2"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Author       string `json:"author"`
	Duration     int64  `json:"duration" validate:"omitempty,min=0"`
	TotalLessons int    `json:"total_lessons" validate:"required,min=1"`
	Price        int64  `json:"price" validate:"omitempty,min=0"`
	IsFree       *bool  `json:"is_free"`
	RequiresAuth *bool  `json:"requires_auth"`
	ThumbnailURL string `json:"thumbnail_url"`
	IsPublished  *bool  `json:"is_published"`
}

// AdminCourse validates the admin course create/update body
func AdminCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AdminCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "malformed request body")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err.Error())
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// AdminLessonRequest is the create/update body for the admin lesson endpoints
type AdminLessonRequest struct {
	LessonNumber int    `json:"lesson_number" validate:"required,min=1"`
	PublicID     string `json:"public_id" validate:"required"`
	Slug         string `json:"slug"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	VideoURL     string `json:"video_url"`
	Duration     int    `json:"duration" validate:"omitempty,min=0"`
	IsFree       *bool  `json:"is_free"`
	IsPublished  *bool  `json:"is_published"`
}

// AdminLesson validates the admin lesson create/update body
func AdminLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AdminLessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "malformed request body")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err.Error())
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}
