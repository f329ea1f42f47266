// file: internals/features/learning/quizzes/service/grader_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qmodel "tutorialku_backend/internals/features/learning/quizzes/model"
)

func buildQuestions(t *testing.T, correctIndexes ...int) []qmodel.QuizQuestionModel {
	t.Helper()
	questions := make([]qmodel.QuizQuestionModel, 0, len(correctIndexes))
	for i, idx := range correctIndexes {
		q := qmodel.QuizQuestionModel{
			QuizQuestionPosition: i + 1,
			QuizQuestionText:     "Apa output kode berikut?",
		}
		require.NoError(t, q.SetOptions([]string{"opsi A", "opsi B", "opsi C", "opsi D"}, idx))
		questions = append(questions, q)
	}
	return questions
}

// answersFor membuat vektor jawaban: `correct` soal pertama dijawab benar,
// sisanya sengaja salah (digeser satu opsi).
func answersFor(questions []qmodel.QuizQuestionModel, correct int) []int {
	answers := make([]int, len(questions))
	for i, q := range questions {
		if i < correct {
			answers[i] = q.QuizQuestionCorrectIndex
		} else {
			answers[i] = (q.QuizQuestionCorrectIndex + 1) % 4
		}
	}
	return answers
}

func TestGradeQuiz_FourOfFivePasses(t *testing.T) {
	questions := buildQuestions(t, 0, 1, 2, 3, 0)

	result, err := GradeQuiz(questions, answersFor(questions, 4))
	require.NoError(t, err)

	assert.Equal(t, 80, result.Score)
	assert.True(t, result.Passed)
}

func TestGradeQuiz_ThreeOfFiveFails(t *testing.T) {
	questions := buildQuestions(t, 0, 1, 2, 3, 0)

	result, err := GradeQuiz(questions, answersFor(questions, 3))
	require.NoError(t, err)

	assert.Equal(t, 60, result.Score)
	assert.False(t, result.Passed)
}

func TestGradeQuiz_AllCorrect(t *testing.T) {
	questions := buildQuestions(t, 1, 1, 1)

	result, err := GradeQuiz(questions, answersFor(questions, 3))
	require.NoError(t, err)

	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Passed)
}

func TestGradeQuiz_AllWrong(t *testing.T) {
	questions := buildQuestions(t, 2, 2)

	result, err := GradeQuiz(questions, answersFor(questions, 0))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Passed)
}

func TestGradeQuiz_RoundsScore(t *testing.T) {
	// 2/3 benar → 66.67 → 67, masih di bawah threshold 80.
	questions := buildQuestions(t, 0, 0, 0)

	result, err := GradeQuiz(questions, answersFor(questions, 2))
	require.NoError(t, err)

	assert.Equal(t, 67, result.Score)
	assert.False(t, result.Passed)
}

func TestGradeQuiz_AnswerCountMismatch(t *testing.T) {
	questions := buildQuestions(t, 0, 1, 2)

	_, err := GradeQuiz(questions, []int{0, 1})
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	_, err = GradeQuiz(questions, []int{0, 1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidSubmission)
}

func TestGradeQuiz_AnswerIndexOutOfRange(t *testing.T) {
	questions := buildQuestions(t, 0, 1)

	_, err := GradeQuiz(questions, []int{0, 4})
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	_, err = GradeQuiz(questions, []int{-1, 1})
	assert.ErrorIs(t, err, ErrInvalidSubmission)
}

func TestGradeQuiz_NoQuestions(t *testing.T) {
	_, err := GradeQuiz(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	_, err = GradeQuiz([]qmodel.QuizQuestionModel{}, []int{})
	assert.ErrorIs(t, err, ErrInvalidSubmission)
}
