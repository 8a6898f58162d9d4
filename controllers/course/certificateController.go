package controllers

import (
	"egrow/database"
	"egrow/middleware"
	courseModels "egrow/models/course"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IssueCertificate issues a certificate for a completed course. Issuance is
// idempotent: a second request returns the existing certificate.
func IssueCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	db := database.Database.Db

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not enrolled in this course!", nil)
	}

	if enrollment.Status != "COMPLETED" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course before requesting a certificate!", nil)
	}

	// Check if certificate already exists
	var existingCert courseModels.Certificate
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&existingCert).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate already issued!", fiber.Map{
			"certificate": existingCert,
		})
	}

	certNumber := uuid.NewString()
	certificate := courseModels.Certificate{
		UserID:            userID,
		CourseID:          uint(courseID),
		EnrollmentID:      enrollment.ID,
		CertificateNumber: certNumber,
		CertificateURL:    fmt.Sprintf("/certificados/%s", certNumber),
		IssuedAt:          time.Now(),
	}

	if err := db.Create(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully!", fiber.Map{
		"certificate": certificate,
	})
}

// GetUserCertificates gets all certificates for the current user
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certificates []courseModels.Certificate
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certificates,
	})
}

// VerifyCertificate is the public verification lookup by certificate number
func VerifyCertificate(c *fiber.Ctx) error {
	number := c.Params("number")

	var certificate courseModels.Certificate
	if err := database.Database.Db.Where("certificate_number = ? AND is_deleted = ?", number, false).
		First(&certificate).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Certificate not found", "")
	}

	var course courseModels.Course
	database.Database.Db.Where("id = ?", certificate.CourseID).First(&course)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"valid":       true,
		"certificate": certificate,
		"course":      course.Title,
	})
}
