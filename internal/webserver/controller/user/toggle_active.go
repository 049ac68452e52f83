package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nbrandao/equidade/internal/webserver/jwtclaimsreader"
)

// Deactivate soft-disables an account. The row is kept; only the active flag
// changes. The last active admin cannot be deactivated.
func (u *Controller) Deactivate(c *fiber.Ctx) error {
	user, err := u.repository.FindByUuid(c.FormValue("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.ErrNotFound
	}

	if user.IsAdmin() && user.Active && u.repository.ActiveAdmins() == 1 {
		return fiber.ErrForbidden
	}

	if err := u.repository.SetActive(user.Uuid, false); err != nil {
		return fiber.ErrInternalServerError
	}

	session := jwtclaimsreader.SessionData(c)
	u.activity.Record(session.ID, "user deactivated", &user.ID)

	return c.Redirect("/users")
}

// Activate re-enables a previously deactivated account.
func (u *Controller) Activate(c *fiber.Ctx) error {
	user, err := u.repository.FindByUuid(c.FormValue("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.ErrNotFound
	}

	if err := u.repository.SetActive(user.Uuid, true); err != nil {
		return fiber.ErrInternalServerError
	}

	session := jwtclaimsreader.SessionData(c)
	u.activity.Record(session.ID, "user reactivated", &user.ID)

	return c.Redirect("/users")
}
