// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"
	"time"

	umodel "tutorialku_backend/internals/features/users/user/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type RegisterRequest struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=80"`
	UserEmail    string `json:"user_email" validate:"required,email,max=120"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
}

func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type UserResponse struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	UserRole  string    `json:"user_role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUserModel(m *umodel.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		UserID:    m.UserID.String(),
		UserName:  m.UserName,
		UserEmail: m.UserEmail,
		UserRole:  m.UserRole,
		CreatedAt: m.UserCreatedAt,
	}
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}
