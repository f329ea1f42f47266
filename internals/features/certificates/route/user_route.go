// file: internals/features/certificates/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificateController "tutorialku_backend/internals/features/certificates/controller"
)

/*
Public routes: cek status sertifikat (dipakai halaman verifikasi publik).
*/
func CertificatePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := certificateController.NewCertificateController(db)

	certificates := r.Group("/certificates")
	certificates.Get("/status/:user_id/:project_slug", ctl.GetStatus) // GET /api/public/certificates/status/:user_id/:project_slug
}

/*
User routes: daftar sertifikat milik sendiri.
*/
func CertificateUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := certificateController.NewCertificateController(db)

	certificates := r.Group("/certificates")
	certificates.Get("/mine", ctl.ListMine) // GET /api/u/certificates/mine
}
