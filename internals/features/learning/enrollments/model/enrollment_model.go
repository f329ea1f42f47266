// file: internals/features/learning/enrollments/model/enrollment_model.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: Enrollment Status
   not_started → in_progress → awaiting_submission → pending_review →
   certificate_eligible; rejected hanya persinggahan dari pending_review dan
   langsung kembali ke awaiting_submission. certificate_eligible terminal.
============================================================================= */
type EnrollmentStatus string

const (
	EnrollmentStatusNotStarted          EnrollmentStatus = "not_started"
	EnrollmentStatusInProgress          EnrollmentStatus = "in_progress"
	EnrollmentStatusAwaitingSubmission  EnrollmentStatus = "awaiting_submission"
	EnrollmentStatusPendingReview       EnrollmentStatus = "pending_review"
	EnrollmentStatusRejected            EnrollmentStatus = "rejected"
	EnrollmentStatusCertificateEligible EnrollmentStatus = "certificate_eligible"
)

func (s EnrollmentStatus) String() string { return string(s) }
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentStatusNotStarted, EnrollmentStatusInProgress,
		EnrollmentStatusAwaitingSubmission, EnrollmentStatusPendingReview,
		EnrollmentStatusRejected, EnrollmentStatusCertificateEligible:
		return true
	default:
		return false
	}
}

// sql.Scanner + driver.Valuer (aman saat scan ke enum)
func (s *EnrollmentStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = EnrollmentStatus(v)
	case []byte:
		*s = EnrollmentStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for EnrollmentStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid EnrollmentStatus: %q", *s)
	}
	return nil
}
func (s EnrollmentStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid EnrollmentStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   Error transisi (dipetakan controller ke 409/422)
============================================================================= */
var (
	ErrInvalidState = errors.New("status enrollment tidak mengizinkan operasi ini")
	ErrInvalidInput = errors.New("input tidak memenuhi syarat transisi")
)

/* =============================================================================
   MODEL: enrollments — satu baris per (user, project)
   - progress percent SELALU hasil recompute dari step_attempts, tidak pernah
     ditambah manual; completed_steps hanya cache turunan untuk tampilan.
   - certificate_issued_at sekali terisi tidak pernah dihapus (issuance one-way).
============================================================================= */
type EnrollmentModel struct {
	// PK
	EnrollmentID uuid.UUID `json:"enrollment_id" gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Pasangan unik
	EnrollmentUserID    uuid.UUID `json:"enrollment_user_id" gorm:"column:enrollment_user_id;type:uuid;not null;index:idx_enrollments_user_project,priority:1,unique"`
	EnrollmentProjectID uuid.UUID `json:"enrollment_project_id" gorm:"column:enrollment_project_id;type:uuid;not null;index:idx_enrollments_user_project,priority:2,unique"`

	// Progres
	EnrollmentProgressPercent int              `json:"enrollment_progress_percent" gorm:"column:enrollment_progress_percent;not null;default:0"`
	EnrollmentStatus          EnrollmentStatus `json:"enrollment_status" gorm:"column:enrollment_status;type:varchar(24);not null;default:'not_started';index:idx_enrollments_status"`

	// Cache turunan (BUKAN source of truth — selalu ditulis ulang saat recompute)
	EnrollmentCompletedSteps datatypes.JSON `json:"enrollment_completed_steps,omitempty" gorm:"column:enrollment_completed_steps;type:jsonb"`

	// Sertifikasi
	EnrollmentCertificateEligible bool       `json:"enrollment_certificate_eligible" gorm:"column:enrollment_certificate_eligible;not null;default:false"`
	EnrollmentCertificateIssuedAt *time.Time `json:"enrollment_certificate_issued_at,omitempty" gorm:"column:enrollment_certificate_issued_at;type:timestamptz"`

	// Submission siklus review
	EnrollmentRepoURL             *string    `json:"enrollment_repo_url,omitempty" gorm:"column:enrollment_repo_url;type:varchar(255)"`
	EnrollmentShowcaseSubmittedAt *time.Time `json:"enrollment_showcase_submitted_at,omitempty" gorm:"column:enrollment_showcase_submitted_at;type:timestamptz"`

	// Keputusan admin terakhir
	EnrollmentReviewedByUserID *uuid.UUID `json:"enrollment_reviewed_by_user_id,omitempty" gorm:"column:enrollment_reviewed_by_user_id;type:uuid"`
	EnrollmentReviewNotes      *string    `json:"enrollment_review_notes,omitempty" gorm:"column:enrollment_review_notes;type:text"`
	EnrollmentReviewedAt       *time.Time `json:"enrollment_reviewed_at,omitempty" gorm:"column:enrollment_reviewed_at;type:timestamptz"`

	// Audit
	EnrollmentCreatedAt time.Time `json:"enrollment_created_at" gorm:"column:enrollment_created_at;type:timestamptz;not null;default:now()"`
	EnrollmentUpdatedAt time.Time `json:"enrollment_updated_at" gorm:"column:enrollment_updated_at;type:timestamptz;not null;default:now()"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (m *EnrollmentModel) BeforeSave(_ *gorm.DB) error {
	m.EnrollmentUpdatedAt = time.Now()
	return nil
}

/* ===================================================================
   Cache turunan
=================================================================== */

func (m *EnrollmentModel) SetCompletedSteps(stepIDs []uuid.UUID) error {
	b, err := json.Marshal(stepIDs)
	if err != nil {
		return err
	}
	m.EnrollmentCompletedSteps = datatypes.JSON(b)
	return nil
}

func (m *EnrollmentModel) CompletedSteps() ([]uuid.UUID, error) {
	if len(m.EnrollmentCompletedSteps) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(m.EnrollmentCompletedSteps, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

/* ===================================================================
   Transisi state machine — murni, dipanggil DI DALAM transaksi yang
   sudah mengunci baris enrollment.
=================================================================== */

// Start: attempt pertama tercatat → in_progress.
// Idempotent: sudah lewat not_started → no-op.
func (m *EnrollmentModel) Start() {
	if m.EnrollmentStatus == EnrollmentStatusNotStarted {
		m.EnrollmentStatus = EnrollmentStatusInProgress
	}
}

// AdvanceOnFullCompletion: progress menyentuh 100% pertama kali.
// - project butuh review → awaiting_submission
// - tanpa review → langsung certificate_eligible + stamp issued_at (atomik
//   dengan transisi karena satu Save dalam transaksi yang sama)
func (m *EnrollmentModel) AdvanceOnFullCompletion(requiresReview bool, now time.Time) error {
	if m.EnrollmentStatus != EnrollmentStatusInProgress {
		return ErrInvalidState
	}
	if m.EnrollmentProgressPercent != 100 {
		return ErrInvalidState
	}
	if requiresReview {
		m.EnrollmentStatus = EnrollmentStatusAwaitingSubmission
		return nil
	}
	m.EnrollmentStatus = EnrollmentStatusCertificateEligible
	m.EnrollmentCertificateEligible = true
	if m.EnrollmentCertificateIssuedAt == nil {
		m.EnrollmentCertificateIssuedAt = &now
	}
	return nil
}

// RegressBelowFullCompletion: recompute turun di bawah 100% sebelum showcase
// dikirim → kembali in_progress. Dipanggil aggregator; setelah pending_review
// atau certificate_eligible status tidak pernah mundur dari sini.
func (m *EnrollmentModel) RegressBelowFullCompletion() {
	if m.EnrollmentStatus == EnrollmentStatusAwaitingSubmission {
		m.EnrollmentStatus = EnrollmentStatusInProgress
	}
}

// SubmitForReview: awaiting_submission → pending_review.
// Wajib masih 100% — progres yang sempat turun (un-complete manual) harus
// dinaikkan lagi dulu sebelum showcase bisa dikirim.
func (m *EnrollmentModel) SubmitForReview(now time.Time) error {
	if m.EnrollmentStatus != EnrollmentStatusAwaitingSubmission {
		return ErrInvalidState
	}
	if m.EnrollmentProgressPercent != 100 {
		return ErrInvalidState
	}
	if m.EnrollmentRepoURL == nil || strings.TrimSpace(*m.EnrollmentRepoURL) == "" {
		return ErrInvalidInput
	}
	m.EnrollmentShowcaseSubmittedAt = &now
	m.EnrollmentStatus = EnrollmentStatusPendingReview
	return nil
}

// Approve: pending_review → certificate_eligible (hanya AdminReviewGate).
// Eligibilitas tidak boleh terbit di bawah 100%; issued_at yang sudah terisi
// dari siklus lama tidak ditimpa.
func (m *EnrollmentModel) Approve(reviewerID uuid.UUID, notes string, now time.Time) error {
	if m.EnrollmentStatus != EnrollmentStatusPendingReview {
		return ErrInvalidState
	}
	if m.EnrollmentProgressPercent != 100 {
		return ErrInvalidState
	}
	m.EnrollmentStatus = EnrollmentStatusCertificateEligible
	m.EnrollmentCertificateEligible = true
	if m.EnrollmentCertificateIssuedAt == nil {
		m.EnrollmentCertificateIssuedAt = &now
	}
	m.EnrollmentReviewedByUserID = &reviewerID
	m.EnrollmentReviewedAt = &now
	if strings.TrimSpace(notes) != "" {
		m.EnrollmentReviewNotes = &notes
	}
	return nil
}

// Reject: pending_review → rejected. Notes WAJIB (learner berhak tahu alasan).
// Tidak menyentuh progress percent maupun histori attempt.
func (m *EnrollmentModel) Reject(reviewerID uuid.UUID, notes string, now time.Time) error {
	if m.EnrollmentStatus != EnrollmentStatusPendingReview {
		return ErrInvalidState
	}
	if strings.TrimSpace(notes) == "" {
		return ErrInvalidInput
	}
	m.EnrollmentStatus = EnrollmentStatusRejected
	m.EnrollmentReviewedByUserID = &reviewerID
	m.EnrollmentReviewNotes = &notes
	m.EnrollmentReviewedAt = &now
	return nil
}

// ReopenAfterRejection: rejected → awaiting_submission, buka siklus submit baru.
// Showcase lama di-reset; repo URL dibiarkan agar bisa dipakai/diganti.
func (m *EnrollmentModel) ReopenAfterRejection() error {
	if m.EnrollmentStatus != EnrollmentStatusRejected {
		return ErrInvalidState
	}
	m.EnrollmentStatus = EnrollmentStatusAwaitingSubmission
	m.EnrollmentShowcaseSubmittedAt = nil
	return nil
}

// IsTerminal: tidak ada transisi keluar dari certificate_eligible.
func (m *EnrollmentModel) IsTerminal() bool {
	return m.EnrollmentStatus == EnrollmentStatusCertificateEligible
}
