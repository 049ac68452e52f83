package security

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nbrandao/equidade/internal/webserver/jwtclaimsreader"
	"github.com/nbrandao/equidade/internal/webserver/model"
	"github.com/nbrandao/equidade/internal/webserver/twofactor"
)

// Enroll shows the enrollment page with the provisioning QR code. The secret
// is generated on first visit and kept un-activated until a code is
// confirmed; revisiting before confirmation shows the same secret again.
func (s *Controller) Enroll(c *fiber.Ctx) error {
	user, err := s.sessionUser(c)
	if err != nil {
		return err
	}

	if user.TwoFactorEnabled {
		return c.Render("security/enroll", fiber.Map{
			"Title":   "Two-factor authentication",
			"Session": c.Locals("Session"),
			"Enabled": true,
		}, "layout")
	}

	if user.TwoFactorSecret == "" {
		secret, err := twofactor.GenerateSecret(s.config.Issuer, user.Email)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		user.TwoFactorSecret = secret
		if err := s.repository.Update(user); err != nil {
			return fiber.ErrInternalServerError
		}
	}

	return s.enrollForm(c, user, "")
}

func (s *Controller) enrollForm(c *fiber.Ctx, user *model.User, errorMessage string) error {
	qr, err := twofactor.QRCode(user.TwoFactorSecret, s.config.Issuer, user.Email)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	status := fiber.StatusOK
	if errorMessage != "" {
		status = fiber.StatusUnauthorized
	}

	return c.Status(status).Render("security/enroll", fiber.Map{
		"Title":   "Two-factor authentication",
		"Session": c.Locals("Session"),
		"Enabled": false,
		"QRCode":  qr,
		"Secret":  user.TwoFactorSecret,
		"Error":   errorMessage,
	}, "layout")
}

func (s *Controller) sessionUser(c *fiber.Ctx) (*model.User, error) {
	session := jwtclaimsreader.SessionData(c)

	user, err := s.repository.FindByUuid(session.Uuid)
	if err != nil {
		return nil, fiber.ErrInternalServerError
	}
	if user == nil {
		return nil, fiber.ErrForbidden
	}
	return user, nil
}
