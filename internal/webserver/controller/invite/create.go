package invite

import (
	"fmt"
	"log"
	"net/mail"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nbrandao/equidade/internal/webserver/infrastructure"
	"github.com/nbrandao/equidade/internal/webserver/jwtclaimsreader"
	"github.com/nbrandao/equidade/internal/webserver/model"
)

// Create issues a new invite token. The role granted on redemption is chosen
// in the form instead of being fixed, so regular-user invites are possible
// too. When SMTP is configured and an address was given, the invite link is
// emailed.
func (i *Controller) Create(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	role, err := strconv.Atoi(c.FormValue("role"))
	if err != nil || role < model.RoleRegular || role > model.RoleAdmin {
		role = model.RoleAdmin
	}

	invite := &model.InviteToken{
		Token:     model.NewInviteTokenString(),
		CreatedBy: session.ID,
		Role:      role,
		ExpiresAt: time.Now().UTC().Add(i.config.InviteTimeout),
	}

	if err := i.repository.Create(invite); err != nil {
		return fiber.ErrInternalServerError
	}

	i.activity.Record(session.ID, "invite issued", nil)

	if address := c.FormValue("email"); address != "" {
		if err := i.email(c, address, invite); err != nil {
			return err
		}
	}

	return c.Redirect("/invites")
}

func (i *Controller) email(c *fiber.Ctx, address string, invite *model.InviteToken) error {
	if _, ok := i.sender.(*infrastructure.NoEmail); ok {
		return nil
	}

	if _, err := mail.ParseAddress(address); err != nil {
		return fiber.ErrBadRequest
	}

	link := fmt.Sprintf("%s/register?invite=%s", i.config.FQDN, invite.Token)

	c.Render("invites/email", fiber.Map{
		"InviteLink":    link,
		"InviteTimeout": strconv.FormatFloat(i.config.InviteTimeout.Hours(), 'f', -1, 64),
	})

	if err := i.sender.Send(
		address,
		"You've been invited to join Equidade",
		string(c.Response().Body()),
	); err != nil {
		log.Printf("error sending invite email: %v\n", err)
		return fiber.ErrInternalServerError
	}

	return nil
}
