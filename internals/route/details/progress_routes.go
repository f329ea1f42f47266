// file: internals/route/details/progress_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificateRoute "tutorialku_backend/internals/features/certificates/route"
	pointRoute "tutorialku_backend/internals/features/progress/points/route"
)

// ProgressPublicRoutes: verifikasi status sertifikat tanpa login.
func ProgressPublicRoutes(r fiber.Router, db *gorm.DB) {
	certificateRoute.CertificatePublicRoutes(r, db)
}

// ProgressUserRoutes: poin & sertifikat milik user login.
func ProgressUserRoutes(r fiber.Router, db *gorm.DB) {
	pointRoute.PointUserRoutes(r, db)
	certificateRoute.CertificateUserRoutes(r, db)
}
