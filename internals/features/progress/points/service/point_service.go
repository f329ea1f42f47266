// file: internals/features/progress/points/service/point_service.go
package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tutorialku_backend/internals/features/progress/points/model"
)

// AddUserPointLogAndUpdateProgress menulis satu event poin ke ledger lalu
// menghitung ulang total dari log (recompute, bukan increment, supaya total
// tidak pernah drift dari isi ledger).
//
// Dipanggil DI DALAM transaksi engine progres; caller yang menjamin event
// hanya difire sekali per transisi yang memenuhi syarat.
func AddUserPointLogAndUpdateProgress(tx *gorm.DB, userID uuid.UUID, sourceType int, sourceID uuid.UUID, points int) error {
	log.Printf("[SERVICE] AddUserPointLogAndUpdateProgress - userID: %s sourceType: %d sourceID: %s points: %d",
		userID.String(), sourceType, sourceID.String(), points)

	// 1. Simpan log poin
	logEntry := model.UserPointLog{
		UserPointLogUserID:     userID,
		UserPointLogPoints:     points,
		UserPointLogSourceType: sourceType,
		UserPointLogSourceID:   sourceID,
		CreatedAt:              time.Now(),
	}
	if err := tx.Create(&logEntry).Error; err != nil {
		log.Println("[ERROR] Gagal insert user_point_log:", err)
		return err
	}

	// 2. Hitung total poin dari ledger
	var total int64
	if err := tx.Table("user_point_logs").
		Where("user_point_log_user_id = ?", userID).
		Select("COALESCE(SUM(user_point_log_points), 0)").
		Scan(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung total poin:", err)
		return err
	}

	// 3. Upsert user_progress
	progress := model.UserProgress{
		UserProgressUserID:      userID,
		UserProgressTotalPoints: int(total),
		LastUpdated:             time.Now(),
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_progress_user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"user_progress_total_points": int(total),
			"last_updated":               time.Now(),
		}),
	}).Create(&progress).Error; err != nil {
		log.Println("[ERROR] Gagal update user_progress:", err)
		return err
	}

	log.Printf("[SUCCESS] Poin berhasil ditambahkan: %d poin", points)
	return nil
}
