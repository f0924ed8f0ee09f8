// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"tutorhub_backend/internals/constants"
)

// RequireRoles validasi role staff terhadap allow-list bertipe, bukan string bebas.
func RequireRoles(forbiddenMessage string, allowed ...constants.StaffRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := c.Locals("staff_role").(string)
		if !ok || raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		role := constants.StaffRole(raw)
		if !role.Valid() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: unknown role",
			})
		}

		if role.In(allowed) {
			return c.Next()
		}

		if forbiddenMessage == "" {
			forbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": forbiddenMessage,
		})
	}
}

// OnlyAdmin shortcut untuk route manajemen katalog.
func OnlyAdmin(feature string) fiber.Handler {
	return RequireRoles(constants.RoleErrorAdmin(feature), constants.RoleAdmin)
}
