package courseRoutes

import (
	controllers "egrow/controllers/course"
	"egrow/middleware"
	validators "egrow/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Progress tracking (slug or primary key accepted as course identifier)
	courseGroup.Get("/progress", middleware.AuthMiddleware, validators.GetProgress(), controllers.GetProgress)
	courseGroup.Post("/progress", middleware.AuthMiddleware, validators.SaveProgress(), controllers.SaveProgress)

	// Catalog
	courseGroup.Get("/", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.OptionalAuthMiddleware, validators.CourseParam(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.AuthMiddleware, validators.CourseParam(), controllers.EnrollInCourse)

	// Certificates
	courseGroup.Post("/:id/certificate", middleware.AuthMiddleware, validators.CourseParam(), controllers.IssueCertificate)

	// User-scoped listings
	userGroup := app.Group("/api/user")
	userGroup.Get("/enrollments", middleware.AuthMiddleware, controllers.GetEnrollments)
	userGroup.Get("/certificates", middleware.AuthMiddleware, controllers.GetUserCertificates)

	// Public certificate verification
	app.Get("/api/certificates/:number/verify", controllers.VerifyCertificate)
}
