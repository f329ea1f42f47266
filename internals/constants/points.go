package constants

// Skor minimal agar attempt kuis dihitung lulus (persen).
const QuizPassThreshold = 80

// Poin yang diberikan ke ledger user.
const (
	PointsStepPassed        = 50  // sekali per step yang baru lulus
	PointsProjectCompletion = 500 // sekali saat progress pertama kali 100%
)

// Tipe sumber untuk user_point_logs.
const (
	PointSourceStepPassed        = 1
	PointSourceProjectCompletion = 2
)
