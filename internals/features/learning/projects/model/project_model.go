// file: internals/features/learning/projects/model/project_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectModel struct {
	// PK
	ProjectID uuid.UUID `json:"project_id" gorm:"column:project_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Identitas
	ProjectSlug        string  `json:"project_slug" gorm:"column:project_slug;type:varchar(160);not null;uniqueIndex"`
	ProjectTitle       string  `json:"project_title" gorm:"column:project_title;type:varchar(120);not null"`
	ProjectDescription *string `json:"project_description,omitempty" gorm:"column:project_description;type:text"`

	// Sertifikasi: kalau true, lulus 100% masih harus lewat review admin
	ProjectRequiresReview bool `json:"project_requires_review" gorm:"column:project_requires_review;not null;default:false"`

	ProjectIsPublished bool `json:"project_is_published" gorm:"column:project_is_published;not null;default:false"`

	// Audit
	ProjectCreatedAt time.Time      `json:"project_created_at" gorm:"column:project_created_at;type:timestamptz;not null;default:now()"`
	ProjectUpdatedAt time.Time      `json:"project_updated_at" gorm:"column:project_updated_at;type:timestamptz;not null;default:now()"`
	ProjectDeletedAt gorm.DeletedAt `json:"project_deleted_at,omitempty" gorm:"column:project_deleted_at;index"`
}

func (ProjectModel) TableName() string { return "projects" }

func (m *ProjectModel) BeforeSave(_ *gorm.DB) error {
	m.ProjectUpdatedAt = time.Now()
	return nil
}
