// file: internals/features/learning/enrollments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "tutorialku_backend/internals/features/learning/enrollments/controller"
	"tutorialku_backend/internals/middlewares/auth"
)

/*
Admin routes: antrian review showcase + keputusan approve/reject.
*/
func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := enrollmentController.NewEnrollmentAdminController(db)

	enrollments := r.Group("/enrollments", auth.OnlyAdmin("enrollment review"))
	enrollments.Get("/pending-reviews", ctl.ListPendingReviews)       // GET  /api/a/enrollments/pending-reviews
	enrollments.Get("/by-project/:project_id", ctl.ListByProject)     // GET  /api/a/enrollments/by-project/:project_id
	enrollments.Post("/:id/review", ctl.ReviewSubmission)             // POST /api/a/enrollments/:id/review
}
