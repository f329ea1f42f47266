// file: internals/features/progress/points/controller/user_point_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorialku_backend/internals/features/progress/points/model"
	helper "tutorialku_backend/internals/helpers"
)

type UserPointController struct {
	DB *gorm.DB
}

func NewUserPointController(db *gorm.DB) *UserPointController {
	return &UserPointController{DB: db}
}

// GET /points/logs — histori poin milik user
func (ctl *UserPointController) ListMyLogs(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&model.UserPointLog{}).
		Where("user_point_log_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var logs []model.UserPointLog
	if err := ctl.DB.
		Where("user_point_log_user_id = ?", userID).
		Order("created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "ok", logs, helper.BuildPagination(total, p))
}

// GET /points/summary — total poin user dari ledger
func (ctl *UserPointController) GetMySummary(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var progress model.UserProgress
	err = ctl.DB.Where("user_progress_user_id = ?", userID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// belum pernah dapat poin
		return helper.JsonOK(c, "ok", fiber.Map{"total_points": 0})
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"total_points": progress.UserProgressTotalPoints,
		"last_updated": progress.LastUpdated,
	})
}
