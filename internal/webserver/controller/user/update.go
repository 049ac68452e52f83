package user

import (
	"errors"
	"net/mail"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nbrandao/equidade/internal/webserver/jwtclaimsreader"
	"github.com/nbrandao/equidade/internal/webserver/model"
)

// Update amends name, email and role of an existing user. Demoting the last
// active admin is rejected so the application cannot lock itself out.
func (u *Controller) Update(c *fiber.Ctx) error {
	user, err := u.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.ErrNotFound
	}

	role, _ := strconv.Atoi(c.FormValue("role"))
	errs := map[string]string{}

	if c.FormValue("name") == "" {
		errs["name"] = "Name cannot be empty"
	}
	if _, err := mail.ParseAddress(c.FormValue("email")); err != nil {
		errs["email"] = "Incorrect email address"
	}
	if role < model.RoleRegular || role > model.RoleAdmin {
		errs["role"] = "Incorrect role"
	}
	if user.IsAdmin() && role != model.RoleAdmin && u.repository.ActiveAdmins() == 1 {
		errs["role"] = "Cannot demote the only active administrator"
	}

	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).Render("users/edit", fiber.Map{
			"Title":           "Edit user",
			"Session":         c.Locals("Session"),
			"User":            user,
			"UsernamePattern": model.UsernamePattern,
			"Errors":          errs,
		}, "layout")
	}

	session := jwtclaimsreader.SessionData(c)
	if user.Role != role {
		u.activity.Record(session.ID, "role changed", &user.ID)
	}

	user.Name = c.FormValue("name")
	user.Email = c.FormValue("email")
	user.Role = role

	if err := u.repository.Update(user); err != nil {
		if errors.Is(err, model.ErrDuplicateIdentity) {
			errs["email"] = "A user with this email already exists"
			return c.Status(fiber.StatusBadRequest).Render("users/edit", fiber.Map{
				"Title":           "Edit user",
				"Session":         c.Locals("Session"),
				"User":            user,
				"UsernamePattern": model.UsernamePattern,
				"Errors":          errs,
			}, "layout")
		}
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/users")
}
