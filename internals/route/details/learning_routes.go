// file: internals/route/details/learning_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentRoute "tutorialku_backend/internals/features/learning/enrollments/route"
	projectRoute "tutorialku_backend/internals/features/learning/projects/route"
	quizRoute "tutorialku_backend/internals/features/learning/quizzes/route"
)

// LearningPublicRoutes: katalog project + bank soal, tanpa login.
func LearningPublicRoutes(r fiber.Router, db *gorm.DB) {
	projectRoute.ProjectPublicRoutes(r, db)
	quizRoute.QuizPublicRoutes(r, db)
}

// LearningUserRoutes: attempt kuis, progress step, dan enrollment milik user.
func LearningUserRoutes(r fiber.Router, db *gorm.DB) {
	quizRoute.QuizUserRoutes(r, db)
	enrollmentRoute.EnrollmentUserRoutes(r, db)
}

// LearningAdminRoutes: kelola project, step, soal kuis, dan review showcase.
func LearningAdminRoutes(r fiber.Router, db *gorm.DB) {
	projectRoute.ProjectAdminRoutes(r, db)
	quizRoute.QuizAdminRoutes(r, db)
	enrollmentRoute.EnrollmentAdminRoutes(r, db)
}
