// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "tutorialku_backend/internals/features/users/auth/controller"
	"tutorialku_backend/internals/middlewares"
	authMiddleware "tutorialku_backend/internals/middlewares/auth"
)

// AuthRoutes: register & login (rate-limited), plus profil user login.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	authGroup := app.Group("/api/auth", middlewares.LoginRateLimiter())
	authGroup.Post("/register", ctl.Register)
	authGroup.Post("/login", ctl.Login)

	me := app.Group("/api/u", authMiddleware.AuthMiddleware())
	me.Get("/me", ctl.Me)
}
