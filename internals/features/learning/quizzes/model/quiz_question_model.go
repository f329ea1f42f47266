// file: internals/features/learning/quizzes/model/quiz_question_model.go
package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: quiz_questions
   - Opsi jawaban disimpan JSONB (array teks) tapi hanya lewat SetOptions agar
     korup/kurang dari 2 opsi ketahuan saat tulis.
   - Correct index menunjuk posisi pada array options.
============================================================================= */
type QuizQuestionModel struct {
	QuizQuestionID     uuid.UUID `json:"quiz_question_id" gorm:"column:quiz_question_id;type:uuid;default:gen_random_uuid();primaryKey"`
	QuizQuestionStepID uuid.UUID `json:"quiz_question_step_id" gorm:"column:quiz_question_step_id;type:uuid;not null;index:idx_quiz_questions_step_pos,priority:1,unique"`

	// Urutan soal dalam step
	QuizQuestionPosition int `json:"quiz_question_position" gorm:"column:quiz_question_position;not null;index:idx_quiz_questions_step_pos,priority:2,unique"`

	QuizQuestionText    string         `json:"quiz_question_text" gorm:"column:quiz_question_text;type:text;not null"`
	QuizQuestionOptions datatypes.JSON `json:"quiz_question_options" gorm:"column:quiz_question_options;type:jsonb;not null"`

	// Index jawaban benar pada options
	QuizQuestionCorrectIndex int `json:"-" gorm:"column:quiz_question_correct_index;not null"`

	QuizQuestionCreatedAt time.Time      `json:"quiz_question_created_at" gorm:"column:quiz_question_created_at;type:timestamptz;not null;default:now()"`
	QuizQuestionUpdatedAt time.Time      `json:"quiz_question_updated_at" gorm:"column:quiz_question_updated_at;type:timestamptz;not null;default:now()"`
	QuizQuestionDeletedAt gorm.DeletedAt `json:"quiz_question_deleted_at,omitempty" gorm:"column:quiz_question_deleted_at;index"`
}

func (QuizQuestionModel) TableName() string { return "quiz_questions" }

func (m *QuizQuestionModel) BeforeSave(_ *gorm.DB) error {
	m.QuizQuestionUpdatedAt = time.Now()
	return nil
}

/* ===================================================================
   Helpers — opsi bertipe
=================================================================== */

const (
	MinQuestionOptions = 2
	MaxQuestionOptions = 6
)

// SetOptions menyimpan opsi + index jawaban benar, tolak konten rusak saat tulis.
func (m *QuizQuestionModel) SetOptions(options []string, correctIndex int) error {
	if len(options) < MinQuestionOptions || len(options) > MaxQuestionOptions {
		return errors.New("jumlah opsi harus 2..6")
	}
	for _, op := range options {
		if strings.TrimSpace(op) == "" {
			return errors.New("option text tidak boleh kosong")
		}
	}
	if correctIndex < 0 || correctIndex >= len(options) {
		return errors.New("correct_index di luar jangkauan options")
	}
	b, err := json.Marshal(options)
	if err != nil {
		return err
	}
	m.QuizQuestionOptions = datatypes.JSON(b)
	m.QuizQuestionCorrectIndex = correctIndex
	return nil
}

// Options membaca kembali array opsi.
func (m *QuizQuestionModel) Options() ([]string, error) {
	var options []string
	if err := json.Unmarshal(m.QuizQuestionOptions, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// OptionCount: jumlah opsi (0 kalau JSON rusak — konten lama sebelum setter bertipe).
func (m *QuizQuestionModel) OptionCount() int {
	options, err := m.Options()
	if err != nil {
		return 0
	}
	return len(options)
}
