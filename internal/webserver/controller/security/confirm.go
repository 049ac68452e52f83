package security

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nbrandao/equidade/internal/webserver/twofactor"
)

// Confirm validates the first code from the authenticator app. Only then is
// two-factor authentication switched on; a wrong code changes nothing. The
// backup codes generated on success are rendered exactly once.
func (s *Controller) Confirm(c *fiber.Ctx) error {
	user, err := s.sessionUser(c)
	if err != nil {
		return err
	}

	if user.TwoFactorSecret == "" || user.TwoFactorEnabled {
		return fiber.ErrBadRequest
	}

	if !twofactor.Validate(c.FormValue("code"), user.TwoFactorSecret) {
		return s.enrollForm(c, user, "Invalid verification code")
	}

	codes, stored, err := twofactor.NewBackupCodes()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	user.TwoFactorEnabled = true
	user.BackupCodes = stored
	user.LastOTPCode = c.FormValue("code")
	if err := s.repository.Update(user); err != nil {
		return fiber.ErrInternalServerError
	}

	s.activity.Record(user.ID, "two-factor authentication enabled", &user.ID)

	return c.Render("security/backup-codes", fiber.Map{
		"Title":   "Backup codes",
		"Session": c.Locals("Session"),
		"Codes":   codes,
	}, "layout")
}
