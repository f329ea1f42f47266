// file: internals/features/learning/quizzes/dto/quiz_question_dto.go
package dto

import (
	"github.com/google/uuid"

	qmodel "tutorialku_backend/internals/features/learning/quizzes/model"
)

/* ==========================================================================================
   REQUEST — CREATE / UPDATE QUESTION (admin)
========================================================================================== */

type CreateQuizQuestionRequest struct {
	QuizQuestionStepID       uuid.UUID `json:"quiz_question_step_id" validate:"required"`
	QuizQuestionPosition     int       `json:"quiz_question_position" validate:"gte=0"`
	QuizQuestionText         string    `json:"quiz_question_text" validate:"required,min=3"`
	QuizQuestionOptions      []string  `json:"quiz_question_options" validate:"required,min=2,max=6,dive,required"`
	QuizQuestionCorrectIndex int       `json:"quiz_question_correct_index" validate:"gte=0"`
}

func (r *CreateQuizQuestionRequest) ToModel() (*qmodel.QuizQuestionModel, error) {
	m := &qmodel.QuizQuestionModel{
		QuizQuestionStepID:   r.QuizQuestionStepID,
		QuizQuestionPosition: r.QuizQuestionPosition,
		QuizQuestionText:     r.QuizQuestionText,
	}
	// setter bertipe: konten rusak ditolak di sini, bukan saat dibaca
	if err := m.SetOptions(r.QuizQuestionOptions, r.QuizQuestionCorrectIndex); err != nil {
		return nil, err
	}
	return m, nil
}

type UpdateQuizQuestionRequest struct {
	QuizQuestionPosition     *int      `json:"quiz_question_position" validate:"omitempty,gte=0"`
	QuizQuestionText         *string   `json:"quiz_question_text" validate:"omitempty,min=3"`
	QuizQuestionOptions      *[]string `json:"quiz_question_options" validate:"omitempty,min=2,max=6,dive,required"`
	QuizQuestionCorrectIndex *int      `json:"quiz_question_correct_index" validate:"omitempty,gte=0"`
}

// ApplyToModel — patch ke model yang sudah di-load.
// Options dan correct_index harus dikirim berpasangan.
func (r *UpdateQuizQuestionRequest) ApplyToModel(m *qmodel.QuizQuestionModel) error {
	if r.QuizQuestionPosition != nil {
		m.QuizQuestionPosition = *r.QuizQuestionPosition
	}
	if r.QuizQuestionText != nil {
		m.QuizQuestionText = *r.QuizQuestionText
	}
	if r.QuizQuestionOptions != nil {
		idx := m.QuizQuestionCorrectIndex
		if r.QuizQuestionCorrectIndex != nil {
			idx = *r.QuizQuestionCorrectIndex
		}
		if err := m.SetOptions(*r.QuizQuestionOptions, idx); err != nil {
			return err
		}
	} else if r.QuizQuestionCorrectIndex != nil {
		options, err := m.Options()
		if err != nil {
			return err
		}
		if err := m.SetOptions(options, *r.QuizQuestionCorrectIndex); err != nil {
			return err
		}
	}
	return nil
}

/* ==========================================================================================
   RESPONSE — tanpa correct index untuk learner
========================================================================================== */

type QuizQuestionResponse struct {
	QuizQuestionID       uuid.UUID `json:"quiz_question_id"`
	QuizQuestionStepID   uuid.UUID `json:"quiz_question_step_id"`
	QuizQuestionPosition int       `json:"quiz_question_position"`
	QuizQuestionText     string    `json:"quiz_question_text"`
	QuizQuestionOptions  []string  `json:"quiz_question_options"`
}

func FromModelQuizQuestion(m *qmodel.QuizQuestionModel) QuizQuestionResponse {
	options, _ := m.Options()
	return QuizQuestionResponse{
		QuizQuestionID:       m.QuizQuestionID,
		QuizQuestionStepID:   m.QuizQuestionStepID,
		QuizQuestionPosition: m.QuizQuestionPosition,
		QuizQuestionText:     m.QuizQuestionText,
		QuizQuestionOptions:  options,
	}
}

func FromModelQuizQuestions(ms []qmodel.QuizQuestionModel) []QuizQuestionResponse {
	out := make([]QuizQuestionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelQuizQuestion(&ms[i]))
	}
	return out
}
