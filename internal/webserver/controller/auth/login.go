package auth

import (
	"github.com/gofiber/fiber/v2"
)

// Login renders the login form
func (a *Controller) Login(c *fiber.Ctx) error {
	return c.Render("auth/login", fiber.Map{
		"Title": "Login",
	}, "layout")
}
