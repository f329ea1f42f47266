// file: internals/features/learning/enrollments/service/progress_service.go
package service

import (
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	certService "tutorialku_backend/internals/features/certificates/service"
	"tutorialku_backend/internals/constants"
	emodel "tutorialku_backend/internals/features/learning/enrollments/model"
	pmodel "tutorialku_backend/internals/features/learning/projects/model"
	pointService "tutorialku_backend/internals/features/progress/points/service"
)

/* =============================================================================
   ProgressAggregator
   Satu-satunya tempat persen progres dihitung. Sumber kebenaran = histori
   step_attempts; enrollment_completed_steps hanya cache turunan yang ditulis
   ulang di sini setiap recompute.
============================================================================= */

type RecomputeOutcome struct {
	Percent       int
	JustCompleted bool // persen menyentuh 100 PERTAMA kali pada recompute ini
}

// CompletionPercent = round(100 × selesai ÷ total); total 0 → 0 (bukan
// div-by-zero). Hasil selalu di-clamp 0..100 — data historis yang lebih besar
// dari total (step passed lalu di-unpublish) tidak boleh menembus invariant.
func CompletionPercent(totalSteps, completedSteps int) int {
	if totalSteps <= 0 {
		return 0
	}
	percent := int(math.Round(100 * float64(completedSteps) / float64(totalSteps)))
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}

// RecomputeAndAdvance menghitung ulang persen enrollment dari step_attempts
// lalu (kalau baru saja 100%) mendorong state machine maju.
//
// Harus dipanggil DI DALAM WithEnrollmentLock* — enr sudah terkunci, dan
// caller (helper lock) yang melakukan Save sehingga persen + state + stamp
// tertulis dalam satu commit.
//
// Idempotent: tanpa attempt baru, dua panggilan beruntun menghasilkan persen
// yang sama dan tidak ada transisi/bonus ganda.
func RecomputeAndAdvance(tx *gorm.DB, enr *emodel.EnrollmentModel, proj *pmodel.ProjectModel) (RecomputeOutcome, error) {
	var outcome RecomputeOutcome

	// total step published milik project
	var totalSteps int64
	if err := tx.Model(&pmodel.ProjectStepModel{}).
		Where("project_step_project_id = ? AND project_step_is_published = TRUE", proj.ProjectID).
		Count(&totalSteps).Error; err != nil {
		return outcome, err
	}

	// himpunan step yang SUDAH lulus (distinct — retry gagal pada step yang
	// sudah lulus tidak pernah mengecilkan himpunan ini). Dibatasi ke step
	// yang MASIH published: attempt historis atas step yang di-unpublish /
	// dihapus tidak ikut dihitung, supaya pembilang tidak melebihi penyebut.
	publishedSteps := tx.Model(&pmodel.ProjectStepModel{}).
		Select("project_step_id").
		Where("project_step_project_id = ? AND project_step_is_published = TRUE", proj.ProjectID)

	var completedStepIDs []uuid.UUID
	if err := tx.Table("step_attempts").
		Where("step_attempt_user_id = ? AND step_attempt_project_id = ? AND step_attempt_passed = TRUE", enr.EnrollmentUserID, enr.EnrollmentProjectID).
		Where("step_attempt_step_id IN (?)", publishedSteps).
		Distinct("step_attempt_step_id").
		Pluck("step_attempt_step_id", &completedStepIDs).Error; err != nil {
		return outcome, err
	}

	percent := CompletionPercent(int(totalSteps), len(completedStepIDs))
	enr.EnrollmentProgressPercent = percent
	if err := enr.SetCompletedSteps(completedStepIDs); err != nil {
		return outcome, err
	}
	outcome.Percent = percent

	// progres yang turun lagi di bawah 100% (un-complete manual, step baru
	// di-publish) menarik awaiting_submission kembali ke in_progress
	if percent < 100 {
		enr.RegressBelowFullCompletion()
	}

	// transisi hanya saat pertama kali menyentuh 100% dari in_progress;
	// recompute berikutnya (status sudah bergeser) tidak memicu apa pun lagi
	if percent == 100 && enr.EnrollmentStatus == emodel.EnrollmentStatusInProgress {
		now := time.Now()
		if err := enr.AdvanceOnFullCompletion(proj.ProjectRequiresReview, now); err != nil {
			return outcome, err
		}
		outcome.JustCompleted = true

		// bonus penyelesaian: sekali per enrollment, difire bersama transisi
		if err := pointService.AddUserPointLogAndUpdateProgress(tx,
			enr.EnrollmentUserID, constants.PointSourceProjectCompletion, proj.ProjectID, constants.PointsProjectCompletion); err != nil {
			return outcome, err
		}

		// project tanpa review: sertifikat langsung terbit pada commit yang sama
		if enr.EnrollmentCertificateEligible && enr.EnrollmentCertificateIssuedAt != nil {
			if err := certService.EnsureForEnrollment(tx,
				enr.EnrollmentUserID, enr.EnrollmentID, proj.ProjectID, proj.ProjectSlug, *enr.EnrollmentCertificateIssuedAt); err != nil {
				return outcome, err
			}
		}

		log.Printf("[SERVICE] Enrollment %s menyentuh 100%% (status: %s)", enr.EnrollmentID, enr.EnrollmentStatus)
	}

	return outcome, nil
}
