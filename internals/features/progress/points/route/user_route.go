// file: internals/features/progress/points/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pointController "tutorialku_backend/internals/features/progress/points/controller"
)

/*
User routes: riwayat poin + ringkasan total poin milik sendiri.
*/
func PointUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := pointController.NewUserPointController(db)

	points := r.Group("/points")
	points.Get("/logs", ctl.ListMyLogs)      // GET /api/u/points/logs?page=&per_page=
	points.Get("/summary", ctl.GetMySummary) // GET /api/u/points/summary
}
