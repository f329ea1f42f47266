// file: internals/features/learning/projects/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	projectController "tutorialku_backend/internals/features/learning/projects/controller"
)

/*
Public routes: katalog project — read-only, tanpa login.
Mount contoh: ProjectPublicRoutes(app.Group("/api/public"), db)
*/
func ProjectPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := projectController.NewProjectUserController(db)

	projects := r.Group("/projects")
	projects.Get("/list", ctl.List)          // GET /api/public/projects/list?page=&per_page=
	projects.Get("/:slug", ctl.GetBySlug)    // GET /api/public/projects/:slug
}
