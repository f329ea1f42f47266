// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authdto "tutorialku_backend/internals/features/users/auth/dto"
	authservice "tutorialku_backend/internals/features/users/auth/service"
	umodel "tutorialku_backend/internals/features/users/user/model"
	helper "tutorialku_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ctrl *AuthController) ensureValidator() {
	if ctrl.Validator == nil {
		ctrl.Validator = validator.New()
	}
}

/* =========================================================
   POST /api/auth/register
========================================================= */

func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authdto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	ctrl.ensureValidator()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := authservice.Register(ctrl.DB, &req)
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan user")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", authdto.FromUserModel(user))
}

/* =========================================================
   POST /api/auth/login
========================================================= */

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authdto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	ctrl.ensureValidator()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, token, err := authservice.Login(ctrl.DB, &req)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal login")
	}

	return helper.JsonOK(c, "Login berhasil", authdto.LoginResponse{
		AccessToken: token,
		User:        authdto.FromUserModel(user),
	})
}

/* =========================================================
   GET /api/u/me
========================================================= */

func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user umodel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.JsonOK(c, "OK", authdto.FromUserModel(&user))
}
