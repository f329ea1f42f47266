// file: internals/features/certificates/controller/certificate_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorialku_backend/internals/features/certificates/model"
	emodel "tutorialku_backend/internals/features/learning/enrollments/model"
	pmodel "tutorialku_backend/internals/features/learning/projects/model"
	helper "tutorialku_backend/internals/helpers"
)

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

// GET /certificates/status/:user_id/:project_slug — getCertificateStatus
// Proyeksi read-only untuk kolaborator pencetak sertifikat: boleh cetak atau
// tidak, plus timestamp penerbitan.
func (ctl *CertificateController) GetStatus(c *fiber.Ctx) error {
	userID, err := uuid.Parse(strings.TrimSpace(c.Params("user_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}
	slug := strings.TrimSpace(c.Params("project_slug"))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "project_slug wajib")
	}

	var proj pmodel.ProjectModel
	if err := ctl.DB.First(&proj, "project_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var enr emodel.EnrollmentModel
	err = ctl.DB.First(&enr, "enrollment_user_id = ? AND enrollment_project_id = ?", userID, proj.ProjectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// belum pernah enroll = belum eligible, bukan error
		return helper.JsonOK(c, "ok", fiber.Map{"eligible": false, "issued_at": nil})
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"eligible":  enr.EnrollmentCertificateEligible,
		"issued_at": enr.EnrollmentCertificateIssuedAt,
	})
}

// GET /certificates — sertifikat milik user (login)
func (ctl *CertificateController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var certs []model.UserCertificate
	if err := ctl.DB.
		Where("user_cert_user_id = ?", userID).
		Order("user_cert_issued_at DESC").
		Find(&certs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "ok", certs)
}
