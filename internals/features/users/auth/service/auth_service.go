// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authdto "tutorialku_backend/internals/features/users/auth/dto"
	umodel "tutorialku_backend/internals/features/users/user/model"
)

var (
	ErrEmailTaken         = errors.New("email sudah terdaftar")
	ErrInvalidCredentials = errors.New("email atau password salah")
)

// Register membuat user baru dengan password ter-hash bcrypt.
func Register(db *gorm.DB, req *authdto.RegisterRequest) (*umodel.UserModel, error) {
	req.Normalize()

	var count int64
	if err := db.Model(&umodel.UserModel{}).
		Where("user_email = ?", req.UserEmail).
		Count(&count).Error; err != nil {
		log.Println("[ERROR] Gagal cek email:", err)
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] Gagal hash password:", err)
		return nil, err
	}

	user := umodel.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPassword: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") ||
			strings.Contains(err.Error(), "23505") {
			return nil, ErrEmailTaken
		}
		log.Println("[ERROR] Gagal membuat user:", err)
		return nil, err
	}

	log.Println("[SUCCESS] User terdaftar:", user.UserEmail)
	return &user, nil
}

// Login memverifikasi kredensial dan mengembalikan user + access token.
func Login(db *gorm.DB, req *authdto.LoginRequest) (*umodel.UserModel, string, error) {
	req.Normalize()

	var user umodel.UserModel
	if err := db.Where("user_email = ?", req.UserEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		log.Println("[ERROR] Gagal mengambil user:", err)
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateAccessToken(&user)
	if err != nil {
		log.Println("[ERROR] Gagal membuat token:", err)
		return nil, "", err
	}
	return &user, token, nil
}
