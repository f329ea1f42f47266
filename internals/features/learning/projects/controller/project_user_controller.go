// file: internals/features/learning/projects/controller/project_user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pdto "tutorialku_backend/internals/features/learning/projects/dto"
	pmodel "tutorialku_backend/internals/features/learning/projects/model"
	helper "tutorialku_backend/internals/helpers"
)

type ProjectUserController struct {
	DB *gorm.DB
}

func NewProjectUserController(db *gorm.DB) *ProjectUserController {
	return &ProjectUserController{DB: db}
}

// GET /projects — katalog project published (public)
func (ctl *ProjectUserController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&pmodel.ProjectModel{}).
		Where("project_is_published = TRUE").
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var projects []pmodel.ProjectModel
	if err := ctl.DB.
		Where("project_is_published = TRUE").
		Order("project_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&projects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "ok", pdto.FromModelProjects(projects), helper.BuildPagination(total, p))
}

// GET /projects/:slug — detail project + step published, by slug (public)
func (ctl *ProjectUserController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "slug wajib")
	}

	var proj pmodel.ProjectModel
	if err := ctl.DB.First(&proj, "project_slug = ? AND project_is_published = TRUE", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var steps []pmodel.ProjectStepModel
	if err := ctl.DB.
		Where("project_step_project_id = ? AND project_step_is_published = TRUE", proj.ProjectID).
		Order("project_step_order_index ASC").
		Find(&steps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"project": pdto.FromModelProject(&proj),
		"steps":   pdto.FromModelProjectSteps(steps),
	})
}
