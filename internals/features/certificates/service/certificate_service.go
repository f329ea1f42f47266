// file: internals/features/certificates/service/certificate_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorialku_backend/internals/features/certificates/model"
	helper "tutorialku_backend/internals/helpers"
)

// EnsureForEnrollment membuat baris sertifikat saat enrollment jadi eligible.
// Idempotent: kalau baris untuk enrollment ini sudah ada, biarkan (issuance
// one-way — penolakan belakangan tidak menghapus sertifikat yang sudah terbit).
func EnsureForEnrollment(tx *gorm.DB, userID, enrollmentID, projectID uuid.UUID, projectSlug string, issuedAt time.Time) error {
	var existing model.UserCertificate
	err := tx.Where("user_cert_enrollment_id = ?", enrollmentID).First(&existing).Error
	if err == nil {
		return nil // sudah terbit
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	base := fmt.Sprintf("%s-%s", projectSlug, userID.String()[:8])
	slug, err := helper.EnsureUniqueSlug(tx, base, "user_certificates", "user_cert_slug_url")
	if err != nil {
		return err
	}

	cert := model.UserCertificate{
		UserCertUserID:       userID,
		UserCertEnrollmentID: enrollmentID,
		UserCertProjectID:    projectID,
		UserCertSlugURL:      slug,
		UserCertIssuedAt:     issuedAt,
	}
	if err := tx.Create(&cert).Error; err != nil {
		log.Println("[ERROR] Gagal membuat user_certificate:", err)
		return err
	}
	log.Printf("[SUCCESS] Sertifikat terbit untuk enrollment %s (slug: %s)", enrollmentID, slug)
	return nil
}
