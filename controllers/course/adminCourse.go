package controllers

import (
	"egrow/database"
	"egrow/middleware"
	"egrow/models"
	courseModels "egrow/models/course"
	courseValidator "egrow/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCourse creates a catalog course (admin only)
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.AdminCourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "missing request data")
	}

	db := database.Database.Db

	var existing courseModels.Course
	if err := db.Where("slug = ? AND is_deleted = ?", reqData.Slug, false).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Course slug already exists", "")
	}

	course := courseModels.Course{
		Slug:         reqData.Slug,
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Author:       reqData.Author,
		Duration:     reqData.Duration,
		TotalLessons: reqData.TotalLessons,
		Price:        reqData.Price,
		ThumbnailURL: reqData.ThumbnailURL,
	}
	if reqData.IsFree != nil {
		course.IsFree = *reqData.IsFree
	}
	if reqData.RequiresAuth != nil {
		course.RequiresAuth = *reqData.RequiresAuth
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"course": course})
}

// AdminUpdateCourse updates catalog fields of an existing course
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.AdminCourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "missing request data")
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found", "")
	}

	course.Slug = reqData.Slug
	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Category = reqData.Category
	course.Author = reqData.Author
	course.Duration = reqData.Duration
	course.TotalLessons = reqData.TotalLessons
	course.Price = reqData.Price
	course.ThumbnailURL = reqData.ThumbnailURL
	if reqData.IsFree != nil {
		course.IsFree = *reqData.IsFree
	}
	if reqData.RequiresAuth != nil {
		course.RequiresAuth = *reqData.RequiresAuth
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"course": course})
}

// AdminDeleteCourse soft-deletes a course
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found", "")
	}

	course.IsDeleted = true
	if err := db.Save(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted": true})
}

// AdminUpsertLesson creates or updates a lesson by (course, lesson_number)
func AdminUpsertLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	reqData, ok := c.Locals("validatedLesson").(*courseValidator.AdminLessonRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "missing request data")
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found", "")
	}

	var lesson courseModels.Lesson
	err := db.Where("course_id = ? AND lesson_number = ? AND is_deleted = ?", courseID, reqData.LessonNumber, false).
		First(&lesson).Error

	lesson.CourseID = uint(courseID)
	lesson.LessonNumber = reqData.LessonNumber
	lesson.PublicID = reqData.PublicID
	lesson.Slug = reqData.Slug
	lesson.Title = reqData.Title
	lesson.Description = reqData.Description
	lesson.VideoURL = reqData.VideoURL
	lesson.Duration = reqData.Duration
	if reqData.IsFree != nil {
		lesson.IsFree = *reqData.IsFree
	}
	if reqData.IsPublished != nil {
		lesson.IsPublished = *reqData.IsPublished
	}

	if err != nil {
		err = db.Create(&lesson).Error
	} else {
		err = db.Save(&lesson).Error
	}
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"lesson": lesson})
}

// AdminDashboard returns aggregate platform counts
func AdminDashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var userCount, courseCount, enrollmentCount, completedCount, certificateCount, paymentCount int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&userCount)
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&courseCount)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&enrollmentCount)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ? AND status = ?", false, "COMPLETED").Count(&completedCount)
	db.Model(&courseModels.Certificate{}).Where("is_deleted = ?", false).Count(&certificateCount)
	db.Model(&models.Payment{}).Where("is_deleted = ? AND status = ?", false, "PAID").Count(&paymentCount)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"users":               userCount,
		"courses":             courseCount,
		"enrollments":         enrollmentCount,
		"completed_courses":   completedCount,
		"certificates_issued": certificateCount,
		"successful_payments": paymentCount,
	})
}
