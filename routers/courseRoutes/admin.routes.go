package courseRoutes

import (
	controllers "egrow/controllers/course"
	resourceControllers "egrow/controllers/resource"
	"egrow/middleware"
	validators "egrow/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin course-management routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin", middleware.AuthMiddleware, middleware.RequireRole("ADMIN"))

	adminGroup.Get("/dashboard", controllers.AdminDashboard)

	adminGroup.Post("/courses", validators.AdminCourse(), controllers.AdminCreateCourse)
	adminGroup.Put("/courses/:id", validators.CourseParam(), validators.AdminCourse(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/courses/:id", validators.CourseParam(), controllers.AdminDeleteCourse)

	adminGroup.Post("/courses/:id/lessons", validators.CourseParam(), validators.AdminLesson(), controllers.AdminUpsertLesson)

	adminGroup.Post("/resources", resourceControllers.AdminCreateResource)
	adminGroup.Put("/resources/:id", resourceControllers.AdminUpdateResource)
	adminGroup.Delete("/resources/:id", resourceControllers.AdminDeleteResource)
}
