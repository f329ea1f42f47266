// file: internals/features/progress/points/model/user_progress_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserProgress struct {
	UserProgressID          uint      `gorm:"column:user_progress_id;primaryKey" json:"user_progress_id"`
	UserProgressUserID      uuid.UUID `gorm:"column:user_progress_user_id;type:uuid;not null;unique" json:"user_progress_user_id"`
	UserProgressTotalPoints int       `gorm:"column:user_progress_total_points;not null;default:0" json:"user_progress_total_points"`
	LastUpdated             time.Time `gorm:"column:last_updated;autoUpdateTime" json:"last_updated"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
