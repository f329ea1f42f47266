// file: internals/features/learning/projects/controller/project_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	validator "github.com/go-playground/validator/v10"

	pdto "tutorialku_backend/internals/features/learning/projects/dto"
	pmodel "tutorialku_backend/internals/features/learning/projects/model"
	helper "tutorialku_backend/internals/helpers"
)

type ProjectAdminController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewProjectAdminController(db *gorm.DB) *ProjectAdminController {
	return &ProjectAdminController{DB: db}
}

func (ctl *ProjectAdminController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// POST /projects (admin)
func (ctl *ProjectAdminController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req pdto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	m := req.ToModel()

	slug, err := helper.EnsureUniqueSlug(ctl.DB, m.ProjectTitle, "projects", "project_slug")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	m.ProjectSlug = slug

	if err := ctl.DB.Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug project sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan project")
	}
	return helper.JsonCreated(c, "Project berhasil dibuat", pdto.FromModelProject(m))
}

// PATCH /projects/:id (admin)
func (ctl *ProjectAdminController) Patch(c *fiber.Ctx) error {
	ctl.ensureValidator()

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var m pmodel.ProjectModel
	if err := ctl.DB.First(&m, "project_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var req pdto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	req.ApplyToModel(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan project")
	}
	return helper.JsonUpdated(c, "Project berhasil diperbarui", pdto.FromModelProject(&m))
}

// DELETE /projects/:id (admin, soft delete)
func (ctl *ProjectAdminController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	res := ctl.DB.Delete(&pmodel.ProjectModel{}, "project_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus project")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Project berhasil dihapus", fiber.Map{"project_id": id})
}

// POST /project-steps (admin)
func (ctl *ProjectAdminController) CreateStep(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req pdto.CreateProjectStepRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal")
	}

	// pastikan project-nya ada
	var proj pmodel.ProjectModel
	if err := ctl.DB.First(&proj, "project_id = ?", req.ProjectStepProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Order index sudah dipakai di project ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan step")
	}
	return helper.JsonCreated(c, "Step berhasil dibuat", pdto.FromModelProjectStep(m))
}

// PATCH /project-steps/:id (admin)
func (ctl *ProjectAdminController) PatchStep(c *fiber.Ctx) error {
	ctl.ensureValidator()

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var m pmodel.ProjectStepModel
	if err := ctl.DB.First(&m, "project_step_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Step tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var req pdto.UpdateProjectStepRequest
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
			return helper.JsonError(c, fiber.StatusConflict, "Order index sudah dipakai di project ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan step")
	}
	return helper.JsonUpdated(c, "Step berhasil diperbarui", pdto.FromModelProjectStep(&m))
}

// DELETE /project-steps/:id (admin, soft delete)
func (ctl *ProjectAdminController) DeleteStep(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	res := ctl.DB.Delete(&pmodel.ProjectStepModel{}, "project_step_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus step")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Step tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Step berhasil dihapus", fiber.Map{"project_step_id": id})
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
