// file: internals/features/learning/projects/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	projectController "tutorialku_backend/internals/features/learning/projects/controller"
	"tutorialku_backend/internals/middlewares/auth"
)

/*
Admin routes: kelola project & step.
Mount contoh: ProjectAdminRoutes(app.Group("/api/a"), db)
*/
func ProjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := projectController.NewProjectAdminController(db)

	projects := r.Group("/projects", auth.OnlyAdmin("project"))
	projects.Post("/", ctl.Create)      // POST   /api/a/projects
	projects.Patch("/:id", ctl.Patch)   // PATCH  /api/a/projects/:id
	projects.Delete("/:id", ctl.Delete) // DELETE /api/a/projects/:id

	steps := r.Group("/project-steps", auth.OnlyAdmin("project step"))
	steps.Post("/", ctl.CreateStep)       // POST   /api/a/project-steps
	steps.Patch("/:id", ctl.PatchStep)    // PATCH  /api/a/project-steps/:id
	steps.Delete("/:id", ctl.DeleteStep)  // DELETE /api/a/project-steps/:id
}
