package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ambassade_backend/internals/constants"
)

// Accès aux claims stockés dans les Locals par le middleware d'auth.

func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Utilisateur non authentifié")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Identifiant utilisateur invalide")
	}
	return id, nil
}

func GetRoleFromLocals(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}

func GetUserTypeFromLocals(c *fiber.Ctx) string {
	t, _ := c.Locals("user_type").(string)
	return t
}

func IsStaff(c *fiber.Ctx) bool {
	return GetUserTypeFromLocals(c) == constants.UserTypePersonnel
}
