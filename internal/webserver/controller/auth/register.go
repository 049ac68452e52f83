package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nbrandao/equidade/internal/webserver/model"
)

// RegisterForm renders the public registration form. An invite token in the
// query string is carried through as a hidden field and only checked on
// submission.
func (a *Controller) RegisterForm(c *fiber.Ctx) error {
	return c.Render("auth/register", fiber.Map{
		"Title":           "Register",
		"Invite":          c.Query("invite"),
		"UsernamePattern": model.UsernamePattern,
		"Errors":          map[string]string{},
	}, "layout")
}

// Register creates an account from the registration form. When a valid invite
// token is presented the account gets the role recorded on the token and the
// token is consumed atomically with the account creation.
func (a *Controller) Register(c *fiber.Ctx) error {
	user := model.User{
		Uuid:     uuid.NewString(),
		Name:     c.FormValue("name"),
		Username: strings.ToLower(c.FormValue("username")),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Role:     model.RoleRegular,
		Active:   true,
	}

	inviteToken := c.FormValue("invite")

	errs := user.Validate(a.config.MinPasswordLength)
	errs = user.ConfirmPassword(c.FormValue("confirm-password"), a.config.MinPasswordLength, errs)
	if len(errs) > 0 {
		return a.registerFormWithErrors(c, user, errs, inviteToken)
	}

	hash, err := model.HashPassword(user.Password)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	user.Password = hash

	if inviteToken == "" {
		if err := a.repository.Create(&user); err != nil {
			if errors.Is(err, model.ErrDuplicateIdentity) {
				errs["email"] = "An account with this username or email already exists"
				return a.registerFormWithErrors(c, user, errs, inviteToken)
			}
			return fiber.ErrInternalServerError
		}
		return c.Redirect("/login")
	}

	invite, err := a.invites.Redeem(inviteToken, &user)
	switch {
	case err == nil:
		a.activity.Record(invite.CreatedBy, "invite redeemed", &user.ID)
		return c.Redirect("/login")
	case errors.Is(err, model.ErrDuplicateIdentity):
		errs["email"] = "An account with this username or email already exists"
		return a.registerFormWithErrors(c, user, errs, inviteToken)
	case errors.Is(err, model.ErrInviteNotFound), errors.Is(err, model.ErrInviteExpired), errors.Is(err, model.ErrInviteUsed):
		// The precise reason is kept out of the response so token strings
		// cannot be probed, but it is logged for the audit trail.
		log.Printf("invite redemption rejected: %s\n", err)
		errs["invite"] = "This invite cannot be used"
		return a.registerFormWithErrors(c, user, errs, inviteToken)
	default:
		return fiber.ErrInternalServerError
	}
}

func (a *Controller) registerFormWithErrors(c *fiber.Ctx, user model.User, errs map[string]string, invite string) error {
	return c.Status(fiber.StatusBadRequest).Render("auth/register", fiber.Map{
		"Title":           "Register",
		"Invite":          invite,
		"Name":            user.Name,
		"Username":        user.Username,
		"Email":           user.Email,
		"UsernamePattern": model.UsernamePattern,
		"Errors":          errs,
	}, "layout")
}
