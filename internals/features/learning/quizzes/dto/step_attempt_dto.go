// file: internals/features/learning/quizzes/dto/step_attempt_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	qmodel "tutorialku_backend/internals/features/learning/quizzes/model"
)

/* ==========================================================================================
   REQUEST — SUBMIT ATTEMPT
========================================================================================== */

type SubmitQuizAttemptRequest struct {
	StepAttemptStepID  uuid.UUID `json:"step_attempt_step_id" validate:"required"`
	StepAttemptAnswers []int     `json:"step_attempt_answers" validate:"required,min=1,dive,gte=0"`
}

/* ==========================================================================================
   REQUEST — STEP COMPLETION (jalur non-kuis)
========================================================================================== */

type StepCompletionRequest struct {
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	StepID    uuid.UUID `json:"step_id" validate:"required"`
	Action    string    `json:"action" validate:"required,oneof=complete incomplete"`
}

func (r *StepCompletionRequest) IsComplete() bool { return r.Action == "complete" }

/* ==========================================================================================
   RESPONSE
========================================================================================== */

type StepAttemptResponse struct {
	StepAttemptID        uuid.UUID             `json:"step_attempt_id"`
	StepAttemptStepID    uuid.UUID             `json:"step_attempt_step_id"`
	StepAttemptProjectID uuid.UUID             `json:"step_attempt_project_id"`
	StepAttemptKind      qmodel.StepAttemptKind `json:"step_attempt_kind"`
	StepAttemptScore     int                   `json:"step_attempt_score"`
	StepAttemptPassed    bool                  `json:"step_attempt_passed"`
	StepAttemptCreatedAt time.Time             `json:"step_attempt_created_at"`
}

func FromModelStepAttempt(m *qmodel.StepAttemptModel) StepAttemptResponse {
	return StepAttemptResponse{
		StepAttemptID:        m.StepAttemptID,
		StepAttemptStepID:    m.StepAttemptStepID,
		StepAttemptProjectID: m.StepAttemptProjectID,
		StepAttemptKind:      m.StepAttemptKind,
		StepAttemptScore:     m.StepAttemptScore,
		StepAttemptPassed:    m.StepAttemptPassed,
		StepAttemptCreatedAt: m.StepAttemptCreatedAt,
	}
}

func FromModelStepAttempts(ms []qmodel.StepAttemptModel) []StepAttemptResponse {
	out := make([]StepAttemptResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelStepAttempt(&ms[i]))
	}
	return out
}
