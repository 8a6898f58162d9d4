package controllers

import (
	"egrow/database"
	"egrow/middleware"
	"egrow/models"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// AdminResourceRequest is the create/update body for a downloadable resource
type AdminResourceRequest struct {
	Slug         string `json:"slug" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	FileURL      string `json:"fileUrl"`
	RequiresAuth *bool  `json:"requiresAuth"`
	IsPublished  *bool  `json:"isPublished"`
}

func parseResourceBody(c *fiber.Ctx) (*AdminResourceRequest, error) {
	reqData := new(AdminResourceRequest)
	if err := c.BodyParser(reqData); err != nil {
		return nil, middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "malformed request body")
	}
	reqData.Slug = strings.TrimSpace(reqData.Slug)
	if err := validate.Struct(reqData); err != nil {
		return nil, middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err.Error())
	}
	return reqData, nil
}

// AdminCreateResource creates a downloadable resource (admin only)
func AdminCreateResource(c *fiber.Ctx) error {
	reqData, err := parseResourceBody(c)
	if err != nil {
		return err
	}

	db := database.Database.Db

	var existing models.Resource
	if err := db.Where("slug = ? AND is_deleted = ?", reqData.Slug, false).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Resource slug already exists", "")
	}

	resource := models.Resource{
		Slug:        reqData.Slug,
		Title:       reqData.Title,
		Description: reqData.Description,
		Category:    reqData.Category,
		FileURL:     reqData.FileURL,
	}
	if reqData.RequiresAuth != nil {
		resource.RequiresAuth = *reqData.RequiresAuth
	}
	if reqData.IsPublished != nil {
		resource.IsPublished = *reqData.IsPublished
	} else {
		resource.IsPublished = true
	}

	if err := db.Create(&resource).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"resource": resource})
}

// AdminUpdateResource updates an existing resource
func AdminUpdateResource(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "resource id must be a positive integer")
	}

	reqData, respErr := parseResourceBody(c)
	if respErr != nil {
		return respErr
	}

	db := database.Database.Db

	var resource models.Resource
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&resource).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Resource not found", "")
	}

	resource.Slug = reqData.Slug
	resource.Title = reqData.Title
	resource.Description = reqData.Description
	resource.Category = reqData.Category
	resource.FileURL = reqData.FileURL
	if reqData.RequiresAuth != nil {
		resource.RequiresAuth = *reqData.RequiresAuth
	}
	if reqData.IsPublished != nil {
		resource.IsPublished = *reqData.IsPublished
	}

	if err := db.Save(&resource).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"resource": resource})
}

// AdminDeleteResource soft-deletes a resource
func AdminDeleteResource(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "resource id must be a positive integer")
	}

	db := database.Database.Db

	var resource models.Resource
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&resource).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Resource not found", "")
	}

	resource.IsDeleted = true
	if err := db.Save(&resource).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted": true})
}
