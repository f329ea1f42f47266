// file: internals/features/learning/projects/model/project_step_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetHints(t *testing.T) {
	var step ProjectStepModel
	hints := []StepHint{
		{Level: 1, Text: "Cek dokumentasi net/http dulu", UnlockAfterMinutes: 0},
		{Level: 2, Text: "Handler butuh method POST", UnlockAfterMinutes: 10},
		{Level: 3, Text: "Lihat contoh di step sebelumnya", UnlockAfterMinutes: 30},
	}

	require.NoError(t, step.SetHints(hints))
	got, err := step.Hints()
	require.NoError(t, err)
	assert.Equal(t, hints, got)
}

func TestSetHints_RejectsBadLevels(t *testing.T) {
	var step ProjectStepModel

	// tidak mulai dari 1
	err := step.SetHints([]StepHint{{Level: 2, Text: "hint"}})
	assert.Error(t, err)

	// loncat level
	err = step.SetHints([]StepHint{
		{Level: 1, Text: "hint"},
		{Level: 3, Text: "hint"},
	})
	assert.Error(t, err)
}

func TestSetHints_RejectsEmptyTextAndNegativeUnlock(t *testing.T) {
	var step ProjectStepModel

	assert.Error(t, step.SetHints([]StepHint{{Level: 1, Text: "   "}}))
	assert.Error(t, step.SetHints([]StepHint{{Level: 1, Text: "hint", UnlockAfterMinutes: -5}}))
}

func TestHints_EmptyColumn(t *testing.T) {
	var step ProjectStepModel
	got, err := step.Hints()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSetCodeSnippet(t *testing.T) {
	var step ProjectStepModel

	require.NoError(t, step.SetCodeSnippet(StepCodeSnippet{
		Language: "go",
		Content:  "package main\n\nfunc main() {}\n",
	}))
	assert.NotEmpty(t, step.ProjectStepCodeSnippet)
}

func TestSetCodeSnippet_RejectsMissingFields(t *testing.T) {
	var step ProjectStepModel

	assert.Error(t, step.SetCodeSnippet(StepCodeSnippet{Language: "", Content: "x"}))
	assert.Error(t, step.SetCodeSnippet(StepCodeSnippet{Language: "go", Content: "  "}))
}
