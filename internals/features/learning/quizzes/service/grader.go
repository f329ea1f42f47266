// file: internals/features/learning/quizzes/service/grader.go
package service

import (
	"errors"
	"math"

	"tutorialku_backend/internals/constants"
	qmodel "tutorialku_backend/internals/features/learning/quizzes/model"
)

// ErrInvalidSubmission: vektor jawaban tidak cocok dengan soal.
// Tidak ada attempt yang dicatat kalau error ini muncul.
var ErrInvalidSubmission = errors.New("jawaban tidak valid untuk soal step ini")

type GradeResult struct {
	Score  int
	Passed bool
}

// GradeQuiz menilai jawaban terhadap soal step (urut by position).
// Murni: tidak menyentuh DB; caller yang menyimpan hasil ke step_attempts.
//
// Aturan:
//   - panjang answers harus sama dengan jumlah soal
//   - setiap answer harus index opsi yang valid pada soalnya
//   - score = round(100 × benar ÷ total), passed = score ≥ threshold (80)
func GradeQuiz(questions []qmodel.QuizQuestionModel, answers []int) (GradeResult, error) {
	if len(questions) == 0 || len(answers) != len(questions) {
		return GradeResult{}, ErrInvalidSubmission
	}

	correct := 0
	for i, q := range questions {
		optCount := q.OptionCount()
		if answers[i] < 0 || answers[i] >= optCount {
			return GradeResult{}, ErrInvalidSubmission
		}
		if answers[i] == q.QuizQuestionCorrectIndex {
			correct++
		}
	}

	score := int(math.Round(100 * float64(correct) / float64(len(questions))))
	return GradeResult{
		Score:  score,
		Passed: score >= constants.QuizPassThreshold,
	}, nil
}
