package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nbrandao/equidade/internal/webserver/model"
)

// New renders the new user form
func (u *Controller) New(c *fiber.Ctx) error {
	return c.Render("users/new", fiber.Map{
		"Title":             "Add user",
		"Session":           c.Locals("Session"),
		"MinPasswordLength": u.config.MinPasswordLength,
		"User":              model.User{},
		"UsernamePattern":   model.UsernamePattern,
		"Errors":            map[string]string{},
	}, "layout")
}
