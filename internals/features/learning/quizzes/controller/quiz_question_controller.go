// file: internals/features/learning/quizzes/controller/quiz_question_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	validator "github.com/go-playground/validator/v10"

	qdto "tutorialku_backend/internals/features/learning/quizzes/dto"
	qmodel "tutorialku_backend/internals/features/learning/quizzes/model"
	helper "tutorialku_backend/internals/helpers"
)

type QuizQuestionController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewQuizQuestionController(db *gorm.DB) *QuizQuestionController {
	return &QuizQuestionController{DB: db}
}

func (ctl *QuizQuestionController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// POST /quiz-questions (admin)
func (ctl *QuizQuestionController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req qdto.CreateQuizQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Posisi soal sudah dipakai di step ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan soal")
	}
	return helper.JsonCreated(c, "Soal berhasil dibuat", qdto.FromModelQuizQuestion(m))
}

// PATCH /quiz-questions/:id (admin)
func (ctl *QuizQuestionController) Patch(c *fiber.Ctx) error {
	ctl.ensureValidator()

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var m qmodel.QuizQuestionModel
	if err := ctl.DB.First(&m, "quiz_question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var req qdto.UpdateQuizQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}
	if err := req.ApplyToModel(&m); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Posisi soal sudah dipakai di step ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan soal")
	}
	return helper.JsonUpdated(c, "Soal berhasil diperbarui", qdto.FromModelQuizQuestion(&m))
}

// DELETE /quiz-questions/:id (admin, soft delete)
func (ctl *QuizQuestionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	res := ctl.DB.Delete(&qmodel.QuizQuestionModel{}, "quiz_question_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus soal")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Soal berhasil dihapus", fiber.Map{"quiz_question_id": id})
}

// GET /steps/:step_id/quiz-questions — soal untuk learner (tanpa kunci jawaban)
func (ctl *QuizQuestionController) ListByStep(c *fiber.Ctx) error {
	stepID, err := uuid.Parse(strings.TrimSpace(c.Params("step_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "step_id tidak valid")
	}

	var questions []qmodel.QuizQuestionModel
	if err := ctl.DB.
		Where("quiz_question_step_id = ?", stepID).
		Order("quiz_question_position ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "ok", qdto.FromModelQuizQuestions(questions))
}

// Deteksi unique violation Postgres (kode "23505")
func isUniqueViolation(err error) bool {
	// tanpa import pgx/pgconn biar portable: cek substring
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
