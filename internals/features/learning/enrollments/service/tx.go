// file: internals/features/learning/enrollments/service/tx.go
package service

import (
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	emodel "tutorialku_backend/internals/features/learning/enrollments/model"
)

var (
	// ErrNotFound: step/project/enrollment yang direferensikan tidak ada.
	ErrNotFound = errors.New("data tidak ditemukan")

	// ErrConcurrencyConflict: retry transaksi habis; aman di-retry dari sisi
	// client karena semua operasi engine ini idempotent / append-only.
	ErrConcurrencyConflict = errors.New("konflik transaksi, silakan coba lagi")
)

// batas retry internal sebelum konflik di-surface ke caller
const maxTxRetries = 3

/* =============================================================================
   Kunci baris enrollment
   Semua read-modify-write terhadap enrollment (recompute persen, transisi
   state) WAJIB lewat sini: satu transaksi, SELECT ... FOR UPDATE, lalu satu
   Save — tidak ada persen/state setengah jadi yang bisa terlihat dari luar.
============================================================================= */

// WithEnrollmentLock menjalankan fn dengan baris enrollment terkunci.
// Mengembalikan enrollment hasil akhir (state setelah commit).
func WithEnrollmentLock(db *gorm.DB, enrollmentID uuid.UUID, fn func(tx *gorm.DB, enr *emodel.EnrollmentModel) error) (*emodel.EnrollmentModel, error) {
	var out *emodel.EnrollmentModel

	run := func() error {
		return db.Transaction(func(tx *gorm.DB) error {
			var enr emodel.EnrollmentModel
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&enr, "enrollment_id = ?", enrollmentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
			if err := fn(tx, &enr); err != nil {
				return err
			}
			if err := tx.Save(&enr).Error; err != nil {
				return err
			}
			out = &enr
			return nil
		})
	}

	if err := retryTx(run); err != nil {
		return nil, err
	}
	return out, nil
}

// WithEnrollmentLockByUserProject sama seperti WithEnrollmentLock tapi lookup
// by (user, project); kalau belum ada dan createIfMissing=true, enrollment
// dibuat dulu (kasus "attempt pertama langsung membuat enrollment").
func WithEnrollmentLockByUserProject(db *gorm.DB, userID, projectID uuid.UUID, createIfMissing bool, fn func(tx *gorm.DB, enr *emodel.EnrollmentModel) error) (*emodel.EnrollmentModel, error) {
	var out *emodel.EnrollmentModel

	run := func() error {
		return db.Transaction(func(tx *gorm.DB) error {
			var enr emodel.EnrollmentModel
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&enr, "enrollment_user_id = ? AND enrollment_project_id = ?", userID, projectID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if !createIfMissing {
					return ErrNotFound
				}
				enr = emodel.EnrollmentModel{
					EnrollmentUserID:    userID,
					EnrollmentProjectID: projectID,
					EnrollmentStatus:    emodel.EnrollmentStatusNotStarted,
				}
				// unique index (user, project) menjaga tidak ada baris ganda
				// saat dua request pertama masuk bersamaan
				if err := tx.Create(&enr).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			if err := fn(tx, &enr); err != nil {
				return err
			}
			if err := tx.Save(&enr).Error; err != nil {
				return err
			}
			out = &enr
			return nil
		})
	}

	if err := retryTx(run); err != nil {
		return nil, err
	}
	return out, nil
}

// retryTx mengulang transaksi yang gagal karena serialization/deadlock/unique
// race sampai maxTxRetries, lalu surface sebagai ErrConcurrencyConflict.
func retryTx(run func() error) error {
	var err error
	for attempt := 1; attempt <= maxTxRetries; attempt++ {
		err = run()
		if err == nil {
			return nil
		}
		if !isRetryableTxError(err) {
			return err
		}
		log.Printf("[WARN] konflik transaksi enrollment (attempt %d/%d): %v", attempt, maxTxRetries, err)
	}
	return ErrConcurrencyConflict
}

// Deteksi error Postgres yang aman di-retry:
// 40001 serialization_failure, 40P01 deadlock_detected, 23505 unique_violation
// (dua request bersamaan membuat enrollment yang sama — retry akan menemukan
// baris yang sudah dibuat lawannya).
func isRetryableTxError(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case "40001", "40P01", "23505":
			return true
		}
	}
	// fallback sniffing kalau driver tidak mengekspos kode
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "deadlock") ||
		strings.Contains(s, "could not serialize") ||
		strings.Contains(s, "duplicate key")
}
