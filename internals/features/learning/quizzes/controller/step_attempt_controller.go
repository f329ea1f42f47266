// file: internals/features/learning/quizzes/controller/step_attempt_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	validator "github.com/go-playground/validator/v10"

	emodel "tutorialku_backend/internals/features/learning/enrollments/model"
	eservice "tutorialku_backend/internals/features/learning/enrollments/service"
	qdto "tutorialku_backend/internals/features/learning/quizzes/dto"
	qmodel "tutorialku_backend/internals/features/learning/quizzes/model"
	qservice "tutorialku_backend/internals/features/learning/quizzes/service"
	helper "tutorialku_backend/internals/helpers"
)

type StepAttemptController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewStepAttemptController(db *gorm.DB) *StepAttemptController {
	return &StepAttemptController{DB: db}
}

func (ctl *StepAttemptController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// POST /step-attempts — submitQuizAttempt
func (ctl *StepAttemptController) SubmitQuizAttempt(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var req qdto.SubmitQuizAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	result, err := qservice.SubmitQuizAttempt(ctl.DB, userID, req.StepAttemptStepID, req.StepAttemptAnswers)
	if err != nil {
		return respondEngineError(c, err)
	}
	return helper.JsonCreated(c, "Attempt berhasil dinilai", result)
}

// POST /step-completions — recordStepCompletion (jalur non-kuis)
func (ctl *StepAttemptController) RecordStepCompletion(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var req qdto.StepCompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	result, err := qservice.RecordStepCompletion(ctl.DB, userID, req.ProjectID, req.StepID, req.IsComplete())
	if err != nil {
		return respondEngineError(c, err)
	}
	return helper.JsonOK(c, "Progress step diperbarui", result)
}

// GET /steps/:step_id/my-attempts — histori attempt milik user untuk satu step
func (ctl *StepAttemptController) ListMyAttempts(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	stepID, err := uuid.Parse(strings.TrimSpace(c.Params("step_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "step_id tidak valid")
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&qmodel.StepAttemptModel{}).
		Where("step_attempt_user_id = ? AND step_attempt_step_id = ?", userID, stepID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var attempts []qmodel.StepAttemptModel
	if err := ctl.DB.
		Where("step_attempt_user_id = ? AND step_attempt_step_id = ?", userID, stepID).
		Order("step_attempt_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "ok", qdto.FromModelStepAttempts(attempts), helper.BuildPagination(total, p))
}

// respondEngineError memetakan taksonomi error engine ke kode HTTP.
func respondEngineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, qservice.ErrInvalidSubmission):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, eservice.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, emodel.ErrInvalidState):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, emodel.ErrInvalidInput):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, eservice.ErrConcurrencyConflict):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
	}
}
