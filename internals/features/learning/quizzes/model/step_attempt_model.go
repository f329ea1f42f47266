// file: internals/features/learning/quizzes/model/step_attempt_model.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =============================================================================
   ENUM-like: Attempt Kind ('quiz','manual')
   - 'quiz'   → hasil grading QuizGrader, append-only selamanya.
   - 'manual' → tanda selesai tanpa kuis (recordStepCompletion); boleh dihapus
                lagi lewat action 'incomplete'. Baris 'quiz' tidak pernah.
============================================================================= */
type StepAttemptKind string

const (
	StepAttemptKindQuiz   StepAttemptKind = "quiz"
	StepAttemptKindManual StepAttemptKind = "manual"
)

func (k StepAttemptKind) String() string { return string(k) }
func (k StepAttemptKind) Valid() bool {
	switch k {
	case StepAttemptKindQuiz, StepAttemptKindManual:
		return true
	default:
		return false
	}
}

// sql.Scanner + driver.Valuer (aman saat scan ke enum)
func (k *StepAttemptKind) Scan(value any) error {
	if value == nil {
		*k = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*k = StepAttemptKind(v)
	case []byte:
		*k = StepAttemptKind(string(v))
	default:
		return fmt.Errorf("unsupported type for StepAttemptKind: %T", value)
	}
	if !k.Valid() {
		return fmt.Errorf("invalid StepAttemptKind: %q", *k)
	}
	return nil
}
func (k StepAttemptKind) Value() (driver.Value, error) {
	if k == "" {
		return nil, nil
	}
	if !k.Valid() {
		return nil, fmt.Errorf("invalid StepAttemptKind: %q", k)
	}
	return string(k), nil
}

/* =============================================================================
   MODEL: step_attempts — log grading append-only
   - Satu baris per event grading; retry = baris baru, tidak pernah update.
   - "Attempt efektif" suatu step = skor tertinggi di antara yang passed.
   - passed disimpan dari hasil grading saat submit (bukan diturunkan ulang dari
     skor) supaya perubahan threshold di masa depan tidak menggeser histori.
============================================================================= */
type StepAttemptModel struct {
	// PK
	StepAttemptID uuid.UUID `json:"step_attempt_id" gorm:"column:step_attempt_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	StepAttemptUserID    uuid.UUID `json:"step_attempt_user_id" gorm:"column:step_attempt_user_id;type:uuid;not null;index:idx_step_attempts_user_step,priority:1;index:idx_step_attempts_user_project,priority:1"`
	StepAttemptStepID    uuid.UUID `json:"step_attempt_step_id" gorm:"column:step_attempt_step_id;type:uuid;not null;index:idx_step_attempts_user_step,priority:2"`
	StepAttemptProjectID uuid.UUID `json:"step_attempt_project_id" gorm:"column:step_attempt_project_id;type:uuid;not null;index:idx_step_attempts_user_project,priority:2"`

	StepAttemptKind StepAttemptKind `json:"step_attempt_kind" gorm:"column:step_attempt_kind;type:varchar(8);not null;default:'quiz'"`

	// Jawaban yang dikirim (array index opsi); NULL untuk kind 'manual'
	StepAttemptAnswers datatypes.JSON `json:"step_attempt_answers,omitempty" gorm:"column:step_attempt_answers;type:jsonb"`

	// Skor 0..100 + verdict dari grader saat submit
	StepAttemptScore  int  `json:"step_attempt_score" gorm:"column:step_attempt_score;not null"`
	StepAttemptPassed bool `json:"step_attempt_passed" gorm:"column:step_attempt_passed;not null;default:false"`

	StepAttemptCreatedAt time.Time `json:"step_attempt_created_at" gorm:"column:step_attempt_created_at;type:timestamptz;not null;default:now()"`
}

func (StepAttemptModel) TableName() string { return "step_attempts" }

// SetAnswers menyimpan vektor jawaban sebagai JSONB.
func (m *StepAttemptModel) SetAnswers(answers []int) error {
	b, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	m.StepAttemptAnswers = datatypes.JSON(b)
	return nil
}

func (m *StepAttemptModel) Answers() ([]int, error) {
	if len(m.StepAttemptAnswers) == 0 {
		return nil, nil
	}
	var answers []int
	if err := json.Unmarshal(m.StepAttemptAnswers, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}
