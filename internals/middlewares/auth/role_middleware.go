// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"tutorialku_backend/internals/constants"
)

// OnlyAdmin membatasi akses route untuk role admin.
// Approval sertifikat dsb. hanya lewat sini — tidak ada cek email hardcoded.
func OnlyAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}
