// file: internals/features/learning/enrollments/service/submission_service.go
package service

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	emodel "tutorialku_backend/internals/features/learning/enrollments/model"
)

/* =============================================================================
   Submission siklus review (sisi learner)
   Validasi format/reachability URL repository adalah urusan kolaborator
   eksternal; engine hanya mencatat keberadaannya.
============================================================================= */

// SubmitExternalRepository mencatat URL repository pada enrollment milik user.
// Boleh diganti selama belum certificate_eligible.
func SubmitExternalRepository(db *gorm.DB, enrollmentID, userID uuid.UUID, url string) (*emodel.EnrollmentModel, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, emodel.ErrInvalidInput
	}

	return WithEnrollmentLock(db, enrollmentID, func(tx *gorm.DB, enr *emodel.EnrollmentModel) error {
		if enr.EnrollmentUserID != userID {
			return ErrNotFound // jangan bocorkan enrollment orang lain
		}
		if enr.IsTerminal() {
			return emodel.ErrInvalidState
		}
		enr.EnrollmentRepoURL = &url
		log.Printf("[SERVICE] Repo URL tercatat untuk enrollment %s", enrollmentID)
		return nil
	})
}

// SubmitShowcase menandai showcase submission → awaiting_submission pindah ke
// pending_review (butuh repo URL sudah tercatat).
func SubmitShowcase(db *gorm.DB, enrollmentID, userID uuid.UUID) (*emodel.EnrollmentModel, error) {
	return WithEnrollmentLock(db, enrollmentID, func(tx *gorm.DB, enr *emodel.EnrollmentModel) error {
		if enr.EnrollmentUserID != userID {
			return ErrNotFound
		}
		if err := enr.SubmitForReview(time.Now()); err != nil {
			return err
		}
		log.Printf("[SERVICE] Enrollment %s masuk pending_review", enrollmentID)
		return nil
	})
}
