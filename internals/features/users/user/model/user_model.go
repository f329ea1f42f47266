// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserName     string    `json:"user_name" gorm:"column:user_name;type:varchar(80);not null"`
	UserEmail    string    `json:"user_email" gorm:"column:user_email;type:varchar(120);not null;uniqueIndex"`
	UserPassword string    `json:"-" gorm:"column:user_password;type:varchar(100);not null"`

	// 'user' | 'admin' — dipakai klaim role pada JWT
	UserRole string `json:"user_role" gorm:"column:user_role;type:varchar(16);not null;default:'user'"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;type:timestamptz;not null;default:now()"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;type:timestamptz;not null;default:now()"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeSave(_ *gorm.DB) error {
	m.UserUpdatedAt = time.Now()
	return nil
}
