// file: internals/features/learning/quizzes/service/attempt_service.go
package service

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorialku_backend/internals/constants"
	emodel "tutorialku_backend/internals/features/learning/enrollments/model"
	eservice "tutorialku_backend/internals/features/learning/enrollments/service"
	pmodel "tutorialku_backend/internals/features/learning/projects/model"
	qmodel "tutorialku_backend/internals/features/learning/quizzes/model"
	pointService "tutorialku_backend/internals/features/progress/points/service"
)

type SubmitQuizAttemptResult struct {
	Score           int                     `json:"score"`
	Passed          bool                    `json:"passed"`
	PointsAwarded   int                     `json:"points_awarded"`
	ProgressPercent int                     `json:"progress_percent"`
	Status          emodel.EnrollmentStatus `json:"status"`
}

// SubmitQuizAttempt: alur inti grading.
// grade (murni) → append step_attempts → recompute persen → (mungkin) transisi
// state — append + recompute + transisi dalam SATU transaksi terkunci.
//
// Poin: +50 hanya saat step BARU lulus (retry step yang sudah lulus tidak
// menambah poin lagi); +500 difire aggregator saat pertama kali 100%.
func SubmitQuizAttempt(db *gorm.DB, userID, stepID uuid.UUID, answers []int) (SubmitQuizAttemptResult, error) {
	var result SubmitQuizAttemptResult

	_, proj, err := loadPublishedStep(db, stepID)
	if err != nil {
		return result, err
	}

	var questions []qmodel.QuizQuestionModel
	if err := db.
		Where("quiz_question_step_id = ?", stepID).
		Order("quiz_question_position ASC").
		Find(&questions).Error; err != nil {
		return result, err
	}

	// grading murni; kalau invalid TIDAK ada attempt yang dicatat
	grade, err := GradeQuiz(questions, answers)
	if err != nil {
		return result, err
	}
	result.Score = grade.Score
	result.Passed = grade.Passed

	enr, err := eservice.WithEnrollmentLockByUserProject(db, userID, proj.ProjectID, true, func(tx *gorm.DB, enr *emodel.EnrollmentModel) error {
		enr.Start() // attempt pertama → in_progress

		// sudah pernah lulus step ini? (dedup poin)
		var passedBefore int64
		if err := tx.Model(&qmodel.StepAttemptModel{}).
			Where("step_attempt_user_id = ? AND step_attempt_step_id = ? AND step_attempt_passed = TRUE", userID, stepID).
			Count(&passedBefore).Error; err != nil {
			return err
		}

		// append-only: setiap grading = baris baru
		attempt := qmodel.StepAttemptModel{
			StepAttemptUserID:    userID,
			StepAttemptStepID:    stepID,
			StepAttemptProjectID: proj.ProjectID,
			StepAttemptKind:      qmodel.StepAttemptKindQuiz,
			StepAttemptScore:     grade.Score,
			StepAttemptPassed:    grade.Passed,
		}
		if err := attempt.SetAnswers(answers); err != nil {
			return err
		}
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		if grade.Passed && passedBefore == 0 {
			if err := pointService.AddUserPointLogAndUpdateProgress(tx,
				userID, constants.PointSourceStepPassed, stepID, constants.PointsStepPassed); err != nil {
				return err
			}
			result.PointsAwarded += constants.PointsStepPassed
		}

		outcome, err := eservice.RecomputeAndAdvance(tx, enr, proj)
		if err != nil {
			return err
		}
		result.ProgressPercent = outcome.Percent
		if outcome.JustCompleted {
			result.PointsAwarded += constants.PointsProjectCompletion
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	result.Status = enr.EnrollmentStatus
	log.Printf("[SERVICE] SubmitQuizAttempt user=%s step=%s score=%d passed=%t percent=%d",
		userID, stepID, result.Score, result.Passed, result.ProgressPercent)
	return result, nil
}

type StepCompletionResult struct {
	ProgressPercent int                     `json:"progress_percent"`
	Status          emodel.EnrollmentStatus `json:"status"`
}

// RecordStepCompletion: jalur non-kuis (project tanpa soal tergrading).
//   - complete   → tulis tanda 'manual' (sekali; kalau sudah complete → no-op)
//   - incomplete → hapus tanda 'manual' saja; baris 'quiz' tidak pernah dihapus,
//     jadi step yang lulus lewat kuis tidak bisa di-un-complete dari jalur ini
//
// Persen dihitung aggregator yang sama dengan jalur kuis.
func RecordStepCompletion(db *gorm.DB, userID, projectID, stepID uuid.UUID, complete bool) (StepCompletionResult, error) {
	var result StepCompletionResult

	step, proj, err := loadPublishedStep(db, stepID)
	if err != nil {
		return result, err
	}
	if step.ProjectStepProjectID != projectID {
		return result, eservice.ErrNotFound
	}

	enr, err := eservice.WithEnrollmentLockByUserProject(db, userID, projectID, true, func(tx *gorm.DB, enr *emodel.EnrollmentModel) error {
		enr.Start()

		if complete {
			// step bersoal wajib lewat grading; tanda manual hanya untuk
			// step tanpa kuis
			var questionCount int64
			if err := tx.Model(&qmodel.QuizQuestionModel{}).
				Where("quiz_question_step_id = ?", stepID).
				Count(&questionCount).Error; err != nil {
				return err
			}
			if err := validateManualCompletion(questionCount); err != nil {
				return err
			}

			var existing int64
			if err := tx.Model(&qmodel.StepAttemptModel{}).
				Where("step_attempt_user_id = ? AND step_attempt_step_id = ? AND step_attempt_kind = ?",
					userID, stepID, qmodel.StepAttemptKindManual).
				Count(&existing).Error; err != nil {
				return err
			}
			if existing == 0 {
				mark := qmodel.StepAttemptModel{
					StepAttemptUserID:    userID,
					StepAttemptStepID:    stepID,
					StepAttemptProjectID: projectID,
					StepAttemptKind:      qmodel.StepAttemptKindManual,
					StepAttemptScore:     100,
					StepAttemptPassed:    true,
				}
				if err := tx.Create(&mark).Error; err != nil {
					return err
				}
			}
		} else {
			if err := tx.
				Where("step_attempt_user_id = ? AND step_attempt_step_id = ? AND step_attempt_kind = ?",
					userID, stepID, qmodel.StepAttemptKindManual).
				Delete(&qmodel.StepAttemptModel{}).Error; err != nil {
				return err
			}
		}

		outcome, err := eservice.RecomputeAndAdvance(tx, enr, proj)
		if err != nil {
			return err
		}
		result.ProgressPercent = outcome.Percent
		return nil
	})
	if err != nil {
		return result, err
	}

	result.Status = enr.EnrollmentStatus
	return result, nil
}

// validateManualCompletion menolak tanda manual untuk step yang punya soal
// tergrading — step seperti itu hanya bisa lulus lewat SubmitQuizAttempt.
func validateManualCompletion(questionCount int64) error {
	if questionCount > 0 {
		return emodel.ErrInvalidState
	}
	return nil
}

// loadPublishedStep mengambil step published + project induknya.
func loadPublishedStep(db *gorm.DB, stepID uuid.UUID) (*pmodel.ProjectStepModel, *pmodel.ProjectModel, error) {
	var step pmodel.ProjectStepModel
	if err := db.First(&step, "project_step_id = ? AND project_step_is_published = TRUE", stepID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, eservice.ErrNotFound
		}
		return nil, nil, err
	}

	var proj pmodel.ProjectModel
	if err := db.First(&proj, "project_id = ? AND project_is_published = TRUE", step.ProjectStepProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, eservice.ErrNotFound
		}
		return nil, nil, err
	}
	return &step, &proj, nil
}
