// file: internals/features/learning/enrollments/service/review_service.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	certService "tutorialku_backend/internals/features/certificates/service"
	emodel "tutorialku_backend/internals/features/learning/enrollments/model"
	pmodel "tutorialku_backend/internals/features/learning/projects/model"
)

/* =============================================================================
   AdminReviewGate
   Satu-satunya jalur keluar dari pending_review. Siapa yang boleh memanggil
   ditentukan middleware role (OnlyAdmin) — bukan identitas hardcoded.
============================================================================= */

// ReviewSubmission menyetujui/menolak showcase submission.
//   - approve dari selain pending_review → ErrInvalidState, tidak ada mutasi
//   - reject tanpa notes → ErrInvalidInput
//   - reject: rejected → langsung dibuka lagi ke awaiting_submission dalam
//     commit yang sama; persen dan histori attempt tidak disentuh
func ReviewSubmission(db *gorm.DB, enrollmentID, reviewerID uuid.UUID, approved bool, notes string) (*emodel.EnrollmentModel, error) {
	return WithEnrollmentLock(db, enrollmentID, func(tx *gorm.DB, enr *emodel.EnrollmentModel) error {
		now := time.Now()

		if approved {
			if err := enr.Approve(reviewerID, notes, now); err != nil {
				return err
			}

			var proj pmodel.ProjectModel
			if err := tx.First(&proj, "project_id = ?", enr.EnrollmentProjectID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
			if err := certService.EnsureForEnrollment(tx,
				enr.EnrollmentUserID, enr.EnrollmentID, proj.ProjectID, proj.ProjectSlug, *enr.EnrollmentCertificateIssuedAt); err != nil {
				return err
			}

			log.Printf("[SERVICE] Review APPROVE enrollment %s oleh %s", enrollmentID, reviewerID)
			return nil
		}

		if err := enr.Reject(reviewerID, notes, now); err != nil {
			return err
		}
		// rejected hanya persinggahan: siklus submit baru langsung dibuka
		if err := enr.ReopenAfterRejection(); err != nil {
			return err
		}
		log.Printf("[SERVICE] Review REJECT enrollment %s oleh %s: %s", enrollmentID, reviewerID, notes)
		return nil
	})
}
