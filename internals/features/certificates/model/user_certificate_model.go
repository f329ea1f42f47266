// file: internals/features/certificates/model/user_certificate_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserCertificate: satu baris per enrollment yang sudah certificate_eligible.
// Rendering artefak (gambar/PDF) dikerjakan kolaborator lain lewat slug.
type UserCertificate struct {
	UserCertID           uint      `json:"user_cert_id" gorm:"column:user_cert_id;primaryKey"`
	UserCertUserID       uuid.UUID `json:"user_cert_user_id" gorm:"column:user_cert_user_id;type:uuid;not null;index"`
	UserCertEnrollmentID uuid.UUID `json:"user_cert_enrollment_id" gorm:"column:user_cert_enrollment_id;type:uuid;not null;unique"`
	UserCertProjectID    uuid.UUID `json:"user_cert_project_id" gorm:"column:user_cert_project_id;type:uuid;not null"`
	UserCertSlugURL      string    `json:"user_cert_slug_url" gorm:"column:user_cert_slug_url;unique;not null"`
	UserCertIssuedAt     time.Time `json:"user_cert_issued_at" gorm:"column:user_cert_issued_at;not null"`
	CreatedAt            time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt            time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (UserCertificate) TableName() string {
	return "user_certificates"
}
