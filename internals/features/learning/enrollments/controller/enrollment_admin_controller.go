// file: internals/features/learning/enrollments/controller/enrollment_admin_controller.go
package controller

import (
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

type EnrollmentAdminController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewEnrollmentAdminController(db *gorm.DB) *EnrollmentAdminController {
	return &EnrollmentAdminController{DB: db}
}

func (ctl *EnrollmentAdminController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// GET /enrollments/pending-reviews — antrean review admin
func (ctl *EnrollmentAdminController) ListPendingReviews(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&emodel.EnrollmentModel{}).
		Where("enrollment_status = ?", emodel.EnrollmentStatusPendingReview).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var enrollments []emodel.EnrollmentModel
	if err := ctl.DB.
		Where("enrollment_status = ?", emodel.EnrollmentStatusPendingReview).
		Order("enrollment_showcase_submitted_at ASC"). // FIFO: paling lama menunggu duluan
		Offset(p.Offset).Limit(p.Limit).
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "ok", edto.FromModelEnrollments(enrollments), helper.BuildPagination(total, p))
}

// GET /projects/:project_id/enrollments — enrollment per project (admin)
func (ctl *EnrollmentAdminController) ListByProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(strings.TrimSpace(c.Params("project_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "project_id tidak valid")
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&emodel.EnrollmentModel{}).
		Where("enrollment_project_id = ?", projectID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var enrollments []emodel.EnrollmentModel
	if err := ctl.DB.
		Where("enrollment_project_id = ?", projectID).
		Order("enrollment_updated_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "ok", edto.FromModelEnrollments(enrollments), helper.BuildPagination(total, p))
}

// POST /enrollments/:id/review — reviewSubmission (AdminReviewGate)
// Reviewer = user admin dari token; tidak ada identitas hardcoded.
func (ctl *EnrollmentAdminController) ReviewSubmission(c *fiber.Ctx) error {
	ctl.ensureValidator()

	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req edto.ReviewSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	enr, err := eservice.ReviewSubmission(ctl.DB, id, reviewerID, *req.Approved, req.Notes)
	if err != nil {
		return respondEnrollmentError(c, err)
	}

	return helper.JsonOK(c, "Review tersimpan", edto.ReviewResultResponse{
		EnrollmentID:        enr.EnrollmentID,
		NewState:            enr.EnrollmentStatus,
		CertificateEligible: enr.EnrollmentCertificateEligible,
	})
}
