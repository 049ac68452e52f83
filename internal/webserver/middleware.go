package webserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nbrandao/equidade/internal/webserver/model"
)

// RequireRole returns HTTP forbidden if the user requesting access does not
// have at least the given role. Roles are ordered (regular < admin), so an
// admin passes every gate. The check runs on every request; nothing is
// cached beyond the session token itself.
func RequireRole(minimum int) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if c.Locals("Session") == nil {
			return fiber.ErrForbidden
		}

		session := c.Locals("Session").(model.User)

		if session.Role < minimum {
			return fiber.ErrForbidden
		}

		return c.Next()
	}
}

// RequireAdmin returns HTTP forbidden if the user requesting access
// is not an admin
func RequireAdmin(c *fiber.Ctx) error {
	return RequireRole(model.RoleAdmin)(c)
}
