// file: internals/features/learning/enrollments/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "tutorialku_backend/internals/features/learning/enrollments/controller"
)

/*
User routes: enrollment milik sendiri + alur submission showcase.
*/
func EnrollmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := enrollmentController.NewEnrollmentUserController(db)

	enrollments := r.Group("/enrollments")
	enrollments.Get("/mine", ctl.ListMine)                 // GET  /api/u/enrollments/mine
	enrollments.Get("/:id", ctl.GetMine)                   // GET  /api/u/enrollments/:id
	enrollments.Post("/:id/repository", ctl.SubmitRepository) // POST /api/u/enrollments/:id/repository
	enrollments.Post("/:id/showcase", ctl.SubmitShowcase)  // POST /api/u/enrollments/:id/showcase
}
