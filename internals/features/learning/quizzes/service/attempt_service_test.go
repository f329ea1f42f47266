// file: internals/features/learning/quizzes/service/attempt_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	emodel "tutorialku_backend/internals/features/learning/enrollments/model"
)

func TestValidateManualCompletion(t *testing.T) {
	// step tanpa soal: tanda manual sah
	assert.NoError(t, validateManualCompletion(0))

	// step bersoal hanya bisa lulus lewat grading, bukan tanda manual
	assert.ErrorIs(t, validateManualCompletion(1), emodel.ErrInvalidState)
	assert.ErrorIs(t, validateManualCompletion(5), emodel.ErrInvalidState)
}
