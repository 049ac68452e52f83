package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/nbrandao/equidade/internal/webserver/model"
)

// VerifyForm renders the second-factor prompt shown after a successful
// password check.
func (a *Controller) VerifyForm(c *fiber.Ctx) error {
	if _, err := a.pending(c); err != nil {
		return a.backToLogin(c)
	}

	return c.Render("auth/verify", fiber.Map{
		"Title": "Two-factor verification",
	}, "layout")
}

// Verify checks the submitted TOTP or backup code and, if it is good,
// upgrades the pending authentication to a full session.
func (a *Controller) Verify(c *fiber.Ctx) error {
	pending, err := a.pending(c)
	if err != nil {
		return a.backToLogin(c)
	}

	user, err := a.repository.FindByID(pending.UserID)
	if err != nil || user == nil {
		return fiber.ErrInternalServerError
	}

	if !user.VerifySecondFactor(c.FormValue("code")) {
		log.Printf("second factor rejected for user %d: %s\n", user.ID, model.ErrInvalidCode)
		return c.Status(fiber.StatusUnauthorized).Render("auth/verify", fiber.Map{
			"Title": "Two-factor verification",
			"Error": "Invalid verification code",
		}, "layout")
	}

	// Persist consumed backup code or remembered TOTP code before the
	// session starts.
	if err := a.repository.Update(user); err != nil {
		return fiber.ErrInternalServerError
	}

	a.pendingAuth.Delete(pending.Uuid)
	c.Cookie(&fiber.Cookie{
		Name:     PendingCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
	})

	return a.startSession(c, user)
}

// pending resolves the pending-authentication cookie. Expired records are
// deleted on sight.
func (a *Controller) pending(c *fiber.Ctx) (*model.PendingAuth, error) {
	id := c.Cookies(PendingCookieName)
	if id == "" {
		return nil, model.ErrNotAuthorized
	}

	pending, err := a.pendingAuth.FindByUuid(id)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, model.ErrNotAuthorized
	}
	if pending.Expired() {
		a.pendingAuth.Delete(pending.Uuid)
		return nil, model.ErrNotAuthorized
	}
	return pending, nil
}

func (a *Controller) backToLogin(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     PendingCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
	})
	return c.Redirect("/login")
}
