package auth

import (
	"github.com/gofiber/fiber/v2"

	"horarios_backend/internals/constants"
)

// RoleMiddlewareWithCustomError valida el rol + mensaje de error custom
func RoleMiddlewareWithCustomError(allowedRoles []constants.Rol, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rolStr, ok := c.Locals("userRole").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}
		rol, err := constants.ParseRol(rolStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: unknown role",
			})
		}

		for _, allowed := range allowedRoles {
			if rol == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// OnlyRoles: atajo para montar en grupos de rutas
func OnlyRoles(customMessage string, roles ...constants.Rol) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
