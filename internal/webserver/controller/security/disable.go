package security

import (
	"github.com/gofiber/fiber/v2"
)

// Disable turns two-factor authentication off and discards the secret and
// any remaining backup codes.
func (s *Controller) Disable(c *fiber.Ctx) error {
	user, err := s.sessionUser(c)
	if err != nil {
		return err
	}

	user.TwoFactorEnabled = false
	user.TwoFactorSecret = ""
	user.BackupCodes = ""
	user.LastOTPCode = ""
	if err := s.repository.Update(user); err != nil {
		return fiber.ErrInternalServerError
	}

	s.activity.Record(user.ID, "two-factor authentication disabled", &user.ID)

	return c.Redirect("/security/two-factor")
}
