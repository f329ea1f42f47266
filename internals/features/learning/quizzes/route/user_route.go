// file: internals/features/learning/quizzes/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "tutorialku_backend/internals/features/learning/quizzes/controller"
	"tutorialku_backend/internals/middlewares"
)

/*
Public routes: soal kuis per step (tanpa kunci jawaban di response).
*/
func QuizPublicRoutes(r fiber.Router, db *gorm.DB) {
	questionCtl := quizController.NewQuizQuestionController(db)

	questions := r.Group("/quiz-questions")
	questions.Get("/by-step/:step_id", questionCtl.ListByStep) // GET /api/public/quiz-questions/by-step/:step_id
}

/*
User routes: submit jawaban kuis, tandai step manual, riwayat attempt.
Submit kuis dibatasi rate limiter khusus.
*/
func QuizUserRoutes(r fiber.Router, db *gorm.DB) {
	attemptCtl := quizController.NewStepAttemptController(db)

	r.Post("/step-attempts", middlewares.QuizSubmitRateLimiter(), attemptCtl.SubmitQuizAttempt) // POST /api/u/step-attempts
	r.Post("/step-completions", attemptCtl.RecordStepCompletion)                                // POST /api/u/step-completions
	r.Get("/steps/:step_id/my-attempts", attemptCtl.ListMyAttempts)                             // GET  /api/u/steps/:step_id/my-attempts
}
