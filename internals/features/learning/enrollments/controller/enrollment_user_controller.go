// file: internals/features/learning/enrollments/controller/enrollment_user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	validator "github.com/go-playground/validator/v10"

	edto "tutorialku_backend/internals/features/learning/enrollments/dto"
	emodel "tutorialku_backend/internals/features/learning/enrollments/model"
	eservice "tutorialku_backend/internals/features/learning/enrollments/service"
	helper "tutorialku_backend/internals/helpers"
)

type EnrollmentUserController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewEnrollmentUserController(db *gorm.DB) *EnrollmentUserController {
	return &EnrollmentUserController{DB: db}
}

func (ctl *EnrollmentUserController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// GET /enrollments — semua enrollment milik user
func (ctl *EnrollmentUserController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var enrollments []emodel.EnrollmentModel
	if err := ctl.DB.
		Where("enrollment_user_id = ?", userID).
		Order("enrollment_updated_at DESC").
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "ok", edto.FromModelEnrollments(enrollments))
}

// GET /enrollments/:id — detail enrollment milik user
func (ctl *EnrollmentUserController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var enr emodel.EnrollmentModel
	if err := ctl.DB.First(&enr, "enrollment_id = ? AND enrollment_user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "ok", edto.FromModelEnrollment(&enr))
}

// POST /enrollments/:id/repository — submitExternalRepository
func (ctl *EnrollmentUserController) SubmitRepository(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req edto.SubmitRepositoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	enr, err := eservice.SubmitExternalRepository(ctl.DB, id, userID, req.EnrollmentRepoURL)
	if err != nil {
		return respondEnrollmentError(c, err)
	}
	return helper.JsonOK(c, "Repository tercatat", fiber.Map{
		"accepted":   true,
		"enrollment": edto.FromModelEnrollment(enr),
	})
}

// POST /enrollments/:id/showcase — tandai showcase submitted → pending_review
func (ctl *EnrollmentUserController) SubmitShowcase(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	enr, err := eservice.SubmitShowcase(ctl.DB, id, userID)
	if err != nil {
		return respondEnrollmentError(c, err)
	}
	return helper.JsonOK(c, "Showcase dikirim untuk review", edto.FromModelEnrollment(enr))
}

// respondEnrollmentError memetakan taksonomi error engine ke kode HTTP.
func respondEnrollmentError(c *fiber.Ctx, err error) error {
	switch {
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
