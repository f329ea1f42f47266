// file: internals/features/learning/enrollments/dto/enrollment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	emodel "tutorialku_backend/internals/features/learning/enrollments/model"
)

/* ==========================================================================================
   REQUEST
========================================================================================== */

// submitExternalRepository — validasi format/reachability URL ada di
// kolaborator eksternal; di sini cukup bentuk URL dasar.
type SubmitRepositoryRequest struct {
	EnrollmentRepoURL string `json:"enrollment_repo_url" validate:"required,url,max=255"`
}

// reviewSubmission — keputusan AdminReviewGate.
// Notes wajib saat reject (dicek service, bukan validator, supaya error-nya
// masuk taksonomi InvalidInput).
type ReviewSubmissionRequest struct {
	Approved *bool  `json:"approved" validate:"required"`
	Notes    string `json:"notes" validate:"omitempty,max=2000"`
}

/* ==========================================================================================
   RESPONSE
========================================================================================== */

type EnrollmentResponse struct {
	EnrollmentID                  uuid.UUID               `json:"enrollment_id"`
	EnrollmentUserID              uuid.UUID               `json:"enrollment_user_id"`
	EnrollmentProjectID           uuid.UUID               `json:"enrollment_project_id"`
	EnrollmentProgressPercent     int                     `json:"enrollment_progress_percent"`
	EnrollmentStatus              emodel.EnrollmentStatus `json:"enrollment_status"`
	EnrollmentCompletedSteps      []uuid.UUID             `json:"enrollment_completed_steps,omitempty"`
	EnrollmentCertificateEligible bool                    `json:"enrollment_certificate_eligible"`
	EnrollmentCertificateIssuedAt *time.Time              `json:"enrollment_certificate_issued_at,omitempty"`
	EnrollmentRepoURL             *string                 `json:"enrollment_repo_url,omitempty"`
	EnrollmentShowcaseSubmittedAt *time.Time              `json:"enrollment_showcase_submitted_at,omitempty"`
	EnrollmentReviewNotes         *string                 `json:"enrollment_review_notes,omitempty"`
	EnrollmentReviewedAt          *time.Time              `json:"enrollment_reviewed_at,omitempty"`
	EnrollmentCreatedAt           time.Time               `json:"enrollment_created_at"`
}

func FromModelEnrollment(m *emodel.EnrollmentModel) EnrollmentResponse {
	completed, _ := m.CompletedSteps()
	return EnrollmentResponse{
		EnrollmentID:                  m.EnrollmentID,
		EnrollmentUserID:              m.EnrollmentUserID,
		EnrollmentProjectID:           m.EnrollmentProjectID,
		EnrollmentProgressPercent:     m.EnrollmentProgressPercent,
		EnrollmentStatus:              m.EnrollmentStatus,
		EnrollmentCompletedSteps:      completed,
		EnrollmentCertificateEligible: m.EnrollmentCertificateEligible,
		EnrollmentCertificateIssuedAt: m.EnrollmentCertificateIssuedAt,
		EnrollmentRepoURL:             m.EnrollmentRepoURL,
		EnrollmentShowcaseSubmittedAt: m.EnrollmentShowcaseSubmittedAt,
		EnrollmentReviewNotes:         m.EnrollmentReviewNotes,
		EnrollmentReviewedAt:          m.EnrollmentReviewedAt,
		EnrollmentCreatedAt:           m.EnrollmentCreatedAt,
	}
}

func FromModelEnrollments(ms []emodel.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelEnrollment(&ms[i]))
	}
	return out
}

// ReviewResultResponse: hasil keputusan AdminReviewGate.
type ReviewResultResponse struct {
	EnrollmentID        uuid.UUID               `json:"enrollment_id"`
	NewState            emodel.EnrollmentStatus `json:"new_state"`
	CertificateEligible bool                    `json:"certificate_eligible"`
}
