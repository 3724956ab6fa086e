package middleware

import (
	"github.com/gofiber/fiber/v2"

	"foundit-fast/internal/domain"
)

func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		if !user.IsAdmin() {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}

func GetCurrentUserRole(c *fiber.Ctx) domain.UserRole {
	user := GetCurrentUser(c)
	if user == nil {
		return ""
	}
	return user.Role
}

func IsAdmin(c *fiber.Ctx) bool {
	return GetCurrentUserRole(c) == domain.RoleAdmin
}
