package invite

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nbrandao/equidade/internal/webserver/infrastructure"
	"github.com/nbrandao/equidade/internal/webserver/model"
)

// List shows all issued invites with their state, together with the form to
// issue a new one.
func (i *Controller) List(c *fiber.Ctx) error {
	invites, err := i.repository.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	emailSendingConfigured := true
	if _, ok := i.sender.(*infrastructure.NoEmail); ok {
		emailSendingConfigured = false
	}

	return c.Render("invites/index", fiber.Map{
		"Title":                  "Invites",
		"Session":                c.Locals("Session"),
		"Invites":                invites,
		"FQDN":                   i.config.FQDN,
		"RoleRegular":            model.RoleRegular,
		"RoleAdmin":              model.RoleAdmin,
		"EmailSendingConfigured": emailSendingConfigured,
	}, "layout")
}
