// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tutorhub_backend/internals/constants"
)

// GetStaffIDFromToken mengambil staff id dari locals yang diisi AuthMiddleware.
func GetStaffIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("staff_id").(string)
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - staff id tidak ada di token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - staff id tidak valid")
	}
	return id, nil
}

// GetStaffRoleFromToken mengambil role staff dari locals.
func GetStaffRoleFromToken(c *fiber.Ctx) (constants.StaffRole, error) {
	raw, _ := c.Locals("staff_role").(string)
	role := constants.StaffRole(raw)
	if !role.Valid() {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - role tidak valid")
	}
	return role, nil
}
