// file: internals/features/learning/enrollments/service/progress_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionPercent(t *testing.T) {
	assert.Equal(t, 0, CompletionPercent(5, 0))
	assert.Equal(t, 20, CompletionPercent(5, 1))
	assert.Equal(t, 80, CompletionPercent(5, 4))
	assert.Equal(t, 100, CompletionPercent(5, 5))
}

func TestCompletionPercent_ZeroSteps(t *testing.T) {
	// Project tanpa step terpublikasi: 0%, bukan panic/NaN.
	assert.Equal(t, 0, CompletionPercent(0, 0))
	assert.Equal(t, 0, CompletionPercent(-1, 3))
}

func TestCompletionPercent_Rounding(t *testing.T) {
	assert.Equal(t, 33, CompletionPercent(3, 1)) // 33.33 → 33
	assert.Equal(t, 67, CompletionPercent(3, 2)) // 66.67 → 67
	assert.Equal(t, 14, CompletionPercent(7, 1)) // 14.29 → 14
	assert.Equal(t, 57, CompletionPercent(7, 4)) // 57.14 → 57
}

func TestCompletionPercent_Clamped(t *testing.T) {
	// step yang sudah lulus lalu di-unpublish bisa membuat hitungan selesai
	// melebihi total historisnya — persen tetap mentok di 100
	assert.Equal(t, 100, CompletionPercent(6, 7))
	assert.Equal(t, 100, CompletionPercent(5, 6))
	assert.Equal(t, 0, CompletionPercent(5, -1))
}

func TestCompletionPercent_Monotonic(t *testing.T) {
	// Menambah step selesai tidak pernah menurunkan persen.
	for total := 1; total <= 12; total++ {
		prev := 0
		for done := 0; done <= total; done++ {
			got := CompletionPercent(total, done)
			assert.GreaterOrEqual(t, got, prev, "total=%d done=%d", total, done)
			prev = got
		}
		assert.Equal(t, 100, CompletionPercent(total, total))
	}
}
