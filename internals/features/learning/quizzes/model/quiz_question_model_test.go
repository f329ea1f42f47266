// file: internals/features/learning/quizzes/model/quiz_question_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/datatypes"
)

func TestSetOptions(t *testing.T) {
	var q QuizQuestionModel
	options := []string{"fmt.Println", "log.Print", "panic", "os.Exit"}

	require.NoError(t, q.SetOptions(options, 2))
	assert.Equal(t, 2, q.QuizQuestionCorrectIndex)

	got, err := q.Options()
	require.NoError(t, err)
	assert.Equal(t, options, got)
	assert.Equal(t, 4, q.OptionCount())
}

func TestSetOptions_RejectsBadCounts(t *testing.T) {
	var q QuizQuestionModel

	assert.Error(t, q.SetOptions([]string{"satu"}, 0))
	assert.Error(t, q.SetOptions([]string{"a", "b", "c", "d", "e", "f", "g"}, 0))
}

func TestSetOptions_RejectsEmptyOption(t *testing.T) {
	var q QuizQuestionModel
	assert.Error(t, q.SetOptions([]string{"a", "   "}, 0))
}

func TestSetOptions_RejectsOutOfRangeIndex(t *testing.T) {
	var q QuizQuestionModel

	assert.Error(t, q.SetOptions([]string{"a", "b"}, 2))
	assert.Error(t, q.SetOptions([]string{"a", "b"}, -1))
}

func TestOptionCount_CorruptJSON(t *testing.T) {
	q := QuizQuestionModel{QuizQuestionOptions: datatypes.JSON([]byte(`{not valid`))}
	assert.Equal(t, 0, q.OptionCount())
}
