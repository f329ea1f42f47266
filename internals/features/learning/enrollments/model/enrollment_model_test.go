// file: internals/features/learning/enrollments/model/enrollment_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnrollment(status EnrollmentStatus, percent int) *EnrollmentModel {
	return &EnrollmentModel{
		EnrollmentID:              uuid.New(),
		EnrollmentUserID:          uuid.New(),
		EnrollmentProjectID:       uuid.New(),
		EnrollmentStatus:          status,
		EnrollmentProgressPercent: percent,
	}
}

func strPtr(s string) *string { return &s }

func TestStart(t *testing.T) {
	enr := newEnrollment(EnrollmentStatusNotStarted, 0)
	enr.Start()
	assert.Equal(t, EnrollmentStatusInProgress, enr.EnrollmentStatus)

	// idempotent: status yang sudah maju tidak mundur
	enr.EnrollmentStatus = EnrollmentStatusPendingReview
	enr.Start()
	assert.Equal(t, EnrollmentStatusPendingReview, enr.EnrollmentStatus)
}

func TestAdvanceOnFullCompletion_WithReview(t *testing.T) {
	now := time.Now()
	enr := newEnrollment(EnrollmentStatusInProgress, 100)

	require.NoError(t, enr.AdvanceOnFullCompletion(true, now))
	assert.Equal(t, EnrollmentStatusAwaitingSubmission, enr.EnrollmentStatus)
	assert.False(t, enr.EnrollmentCertificateEligible)
	assert.Nil(t, enr.EnrollmentCertificateIssuedAt)
}

func TestAdvanceOnFullCompletion_WithoutReview(t *testing.T) {
	now := time.Now()
	enr := newEnrollment(EnrollmentStatusInProgress, 100)

	require.NoError(t, enr.AdvanceOnFullCompletion(false, now))
	assert.Equal(t, EnrollmentStatusCertificateEligible, enr.EnrollmentStatus)
	assert.True(t, enr.EnrollmentCertificateEligible)
	require.NotNil(t, enr.EnrollmentCertificateIssuedAt)
	assert.Equal(t, now, *enr.EnrollmentCertificateIssuedAt)
	assert.True(t, enr.IsTerminal())
}

func TestAdvanceOnFullCompletion_RequiresFullProgress(t *testing.T) {
	enr := newEnrollment(EnrollmentStatusInProgress, 99)
	assert.ErrorIs(t, enr.AdvanceOnFullCompletion(false, time.Now()), ErrInvalidState)
	assert.Equal(t, EnrollmentStatusInProgress, enr.EnrollmentStatus)
}

func TestAdvanceOnFullCompletion_RequiresInProgress(t *testing.T) {
	for _, status := range []EnrollmentStatus{
		EnrollmentStatusNotStarted,
		EnrollmentStatusAwaitingSubmission,
		EnrollmentStatusPendingReview,
		EnrollmentStatusRejected,
		EnrollmentStatusCertificateEligible,
	} {
		enr := newEnrollment(status, 100)
		assert.ErrorIs(t, enr.AdvanceOnFullCompletion(false, time.Now()), ErrInvalidState, "status %s", status)
	}
}

func TestSubmitForReview(t *testing.T) {
	now := time.Now()
	enr := newEnrollment(EnrollmentStatusAwaitingSubmission, 100)
	enr.EnrollmentRepoURL = strPtr("https://github.com/budi/todo-api")

	require.NoError(t, enr.SubmitForReview(now))
	assert.Equal(t, EnrollmentStatusPendingReview, enr.EnrollmentStatus)
	require.NotNil(t, enr.EnrollmentShowcaseSubmittedAt)
	assert.Equal(t, now, *enr.EnrollmentShowcaseSubmittedAt)
}

func TestSubmitForReview_NeedsRepoURL(t *testing.T) {
	enr := newEnrollment(EnrollmentStatusAwaitingSubmission, 100)
	assert.ErrorIs(t, enr.SubmitForReview(time.Now()), ErrInvalidInput)

	enr.EnrollmentRepoURL = strPtr("   ")
	assert.ErrorIs(t, enr.SubmitForReview(time.Now()), ErrInvalidInput)
}

func TestSubmitForReview_RequiresFullProgress(t *testing.T) {
	// progres sempat turun setelah showcase dibuka (un-complete manual)
	enr := newEnrollment(EnrollmentStatusAwaitingSubmission, 86)
	enr.EnrollmentRepoURL = strPtr("https://github.com/budi/todo-api")
	assert.ErrorIs(t, enr.SubmitForReview(time.Now()), ErrInvalidState)
}

func TestSubmitForReview_WrongState(t *testing.T) {
	enr := newEnrollment(EnrollmentStatusInProgress, 50)
	enr.EnrollmentRepoURL = strPtr("https://github.com/budi/todo-api")
	assert.ErrorIs(t, enr.SubmitForReview(time.Now()), ErrInvalidState)
}

func TestApprove(t *testing.T) {
	now := time.Now()
	reviewer := uuid.New()
	enr := newEnrollment(EnrollmentStatusPendingReview, 100)

	require.NoError(t, enr.Approve(reviewer, "Mantap, struktur repo rapi", now))
	assert.Equal(t, EnrollmentStatusCertificateEligible, enr.EnrollmentStatus)
	assert.True(t, enr.EnrollmentCertificateEligible)
	require.NotNil(t, enr.EnrollmentCertificateIssuedAt)
	require.NotNil(t, enr.EnrollmentReviewedByUserID)
	assert.Equal(t, reviewer, *enr.EnrollmentReviewedByUserID)
	assert.True(t, enr.IsTerminal())
}

func TestApprove_RequiresFullProgress(t *testing.T) {
	enr := newEnrollment(EnrollmentStatusPendingReview, 86)
	assert.ErrorIs(t, enr.Approve(uuid.New(), "ok", time.Now()), ErrInvalidState)
	assert.False(t, enr.EnrollmentCertificateEligible)
	assert.Nil(t, enr.EnrollmentCertificateIssuedAt)
}

func TestRegressBelowFullCompletion(t *testing.T) {
	enr := newEnrollment(EnrollmentStatusAwaitingSubmission, 86)
	enr.RegressBelowFullCompletion()
	assert.Equal(t, EnrollmentStatusInProgress, enr.EnrollmentStatus)

	// status lain tidak pernah mundur lewat jalur ini
	for _, status := range []EnrollmentStatus{
		EnrollmentStatusNotStarted,
		EnrollmentStatusInProgress,
		EnrollmentStatusPendingReview,
		EnrollmentStatusRejected,
		EnrollmentStatusCertificateEligible,
	} {
		enr := newEnrollment(status, 86)
		enr.RegressBelowFullCompletion()
		assert.Equal(t, status, enr.EnrollmentStatus)
	}
}

func TestApprove_OnlyFromPendingReview(t *testing.T) {
	for _, status := range []EnrollmentStatus{
		EnrollmentStatusNotStarted,
		EnrollmentStatusInProgress,
		EnrollmentStatusAwaitingSubmission,
		EnrollmentStatusRejected,
		EnrollmentStatusCertificateEligible,
	} {
		enr := newEnrollment(status, 100)
		assert.ErrorIs(t, enr.Approve(uuid.New(), "", time.Now()), ErrInvalidState, "status %s", status)
	}
}

func TestApprove_KeepsExistingIssuedAt(t *testing.T) {
	issued := time.Now().Add(-48 * time.Hour)
	enr := newEnrollment(EnrollmentStatusPendingReview, 100)
	enr.EnrollmentCertificateIssuedAt = &issued

	require.NoError(t, enr.Approve(uuid.New(), "", time.Now()))
	assert.Equal(t, issued, *enr.EnrollmentCertificateIssuedAt)
}

func TestReject_RequiresNotes(t *testing.T) {
	enr := newEnrollment(EnrollmentStatusPendingReview, 100)
	assert.ErrorIs(t, enr.Reject(uuid.New(), "", time.Now()), ErrInvalidInput)
	assert.ErrorIs(t, enr.Reject(uuid.New(), "   ", time.Now()), ErrInvalidInput)
	assert.Equal(t, EnrollmentStatusPendingReview, enr.EnrollmentStatus)
}

func TestRejectionCycle(t *testing.T) {
	now := time.Now()
	reviewer := uuid.New()
	enr := newEnrollment(EnrollmentStatusPendingReview, 100)
	enr.EnrollmentRepoURL = strPtr("https://github.com/budi/todo-api")
	enr.EnrollmentShowcaseSubmittedAt = &now

	require.NoError(t, enr.Reject(reviewer, "README belum menjelaskan cara run", now))
	assert.Equal(t, EnrollmentStatusRejected, enr.EnrollmentStatus)

	require.NoError(t, enr.ReopenAfterRejection())
	assert.Equal(t, EnrollmentStatusAwaitingSubmission, enr.EnrollmentStatus)

	// Rejection tidak menyentuh progress & eligibility; showcase di-reset,
	// repo URL dipertahankan agar bisa dipakai ulang.
	assert.Equal(t, 100, enr.EnrollmentProgressPercent)
	assert.False(t, enr.EnrollmentCertificateEligible)
	assert.Nil(t, enr.EnrollmentShowcaseSubmittedAt)
	require.NotNil(t, enr.EnrollmentRepoURL)

	// Siklus kedua: submit ulang lalu approve.
	later := now.Add(time.Hour)
	require.NoError(t, enr.SubmitForReview(later))
	require.NoError(t, enr.Approve(reviewer, "", later))
	assert.True(t, enr.IsTerminal())
}

func TestReopenAfterRejection_OnlyFromRejected(t *testing.T) {
	enr := newEnrollment(EnrollmentStatusPendingReview, 100)
	assert.ErrorIs(t, enr.ReopenAfterRejection(), ErrInvalidState)
}

func TestEnrollmentStatus_Valid(t *testing.T) {
	assert.True(t, EnrollmentStatusNotStarted.Valid())
	assert.True(t, EnrollmentStatusCertificateEligible.Valid())
	assert.False(t, EnrollmentStatus("done").Valid())
	assert.False(t, EnrollmentStatus("").Valid())
}

func TestEnrollmentStatus_Scan(t *testing.T) {
	var s EnrollmentStatus
	require.NoError(t, s.Scan("pending_review"))
	assert.Equal(t, EnrollmentStatusPendingReview, s)

	require.NoError(t, s.Scan([]byte("rejected")))
	assert.Equal(t, EnrollmentStatusRejected, s)

	assert.Error(t, s.Scan("bogus"))
}

func TestCompletedStepsRoundTrip(t *testing.T) {
	enr := newEnrollment(EnrollmentStatusInProgress, 50)
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	require.NoError(t, enr.SetCompletedSteps(ids))
	got, err := enr.CompletedSteps()
	require.NoError(t, err)
	assert.Equal(t, ids, got)
}
