// file: internals/features/learning/quizzes/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "tutorialku_backend/internals/features/learning/quizzes/controller"
	"tutorialku_backend/internals/middlewares/auth"
)

/*
Admin routes: kelola bank soal kuis.
*/
func QuizAdminRoutes(r fiber.Router, db *gorm.DB) {
	questionCtl := quizController.NewQuizQuestionController(db)

	questions := r.Group("/quiz-questions", auth.OnlyAdmin("quiz question"))
	questions.Post("/", questionCtl.Create)      // POST   /api/a/quiz-questions
	questions.Patch("/:id", questionCtl.Patch)   // PATCH  /api/a/quiz-questions/:id
	questions.Delete("/:id", questionCtl.Delete) // DELETE /api/a/quiz-questions/:id
}
