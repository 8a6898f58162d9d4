package publicRoutes

import (
	resourceControllers "egrow/controllers/resource"
	searchControllers "egrow/controllers/search"
	seoController "egrow/controllers/seo"
	trackController "egrow/controllers/track"
	"egrow/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupPublicRoutes sets up search, resources, tracking and SEO routes
func SetupPublicRoutes(app *fiber.App) {
	app.Get("/api/search", searchControllers.GlobalSearch)

	app.Get("/api/resources", resourceControllers.GetResources)
	app.Get("/api/resources/:slug/access", middleware.OptionalAuthMiddleware, resourceControllers.AccessResource)

	app.Post("/api/track/utm", middleware.OptionalAuthMiddleware, trackController.RecordUTMVisit)

	app.Get("/sitemap.xml", seoController.Sitemap)
	app.Get("/robots.txt", seoController.Robots)
}
