package seoController

import (
	"egrow/config"
	searchControllers "egrow/controllers/search"
	"egrow/database"
	"egrow/models"
	courseModels "egrow/models/course"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Sitemap generates sitemap.xml from the static page registry plus the
// published course and resource catalogs.
func Sitemap(c *fiber.Ctx) error {
	base := strings.TrimRight(config.AppConfig.SiteURL, "/")
	db := database.Database.Db

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	for _, page := range searchControllers.StaticPages() {
		fmt.Fprintf(&b, "  <url><loc>%s%s</loc></url>\n", base, page.Path)
	}

	var courses []courseModels.Course
	if err := db.Where("is_deleted = ? AND is_published = ?", false, true).Find(&courses).Error; err == nil {
		for _, course := range courses {
			fmt.Fprintf(&b, "  <url><loc>%s/curso/%s</loc></url>\n", base, course.Slug)
		}
	}

	var resources []models.Resource
	if err := db.Where("is_deleted = ? AND is_published = ?", false, true).Find(&resources).Error; err == nil {
		for _, resource := range resources {
			fmt.Fprintf(&b, "  <url><loc>%s/recursos/%s</loc></url>\n", base, resource.Slug)
		}
	}

	b.WriteString("</urlset>\n")

	c.Set("Content-Type", "application/xml")
	return c.SendString(b.String())
}

// Robots serves robots.txt pointing crawlers at the sitemap
func Robots(c *fiber.Ctx) error {
	base := strings.TrimRight(config.AppConfig.SiteURL, "/")

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Disallow: /mi-cuenta\n")
	b.WriteString("Disallow: /mi-aprendizaje\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", base)

	c.Set("Content-Type", "text/plain")
	return c.SendString(b.String())
}
