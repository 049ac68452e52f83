package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nbrandao/equidade/internal/webserver/model"
)

// Edit renders the edit user form
func (u *Controller) Edit(c *fiber.Ctx) error {
	user, err := u.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.ErrNotFound
	}

	return c.Render("users/edit", fiber.Map{
		"Title":           "Edit user",
		"Session":         c.Locals("Session"),
		"User":            user,
		"UsernamePattern": model.UsernamePattern,
		"Errors":          map[string]string{},
	}, "layout")
}
