// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "tutorialku_backend/internals/route/details"
	authMiddleware "tutorialku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → wajib JWT
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())

	// ADMIN → JWT + role admin
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Learning routes...")
	routeDetails.LearningPublicRoutes(public, db)
	routeDetails.LearningUserRoutes(private, db)
	routeDetails.LearningAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Progress routes...")
	routeDetails.ProgressPublicRoutes(public, db)
	routeDetails.ProgressUserRoutes(private, db)
}
