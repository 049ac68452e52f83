package webserver

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/nbrandao/equidade/internal/webserver/controller/auth"
	"github.com/nbrandao/equidade/internal/webserver/controller/home"
	"github.com/nbrandao/equidade/internal/webserver/controller/invite"
	"github.com/nbrandao/equidade/internal/webserver/controller/security"
	"github.com/nbrandao/equidade/internal/webserver/controller/user"
	"github.com/nbrandao/equidade/internal/webserver/jwtclaimsreader"
	"github.com/nbrandao/equidade/internal/webserver/model"
	"gorm.io/gorm"
)

type Sender interface {
	From() string
	Send(address, subject, body string) error
}

type Controllers struct {
	Auth                                  *auth.Controller
	Users                                 *user.Controller
	Invites                               *invite.Controller
	Security                              *security.Controller
	Home                                  *home.Controller
	AllowIfNotLoggedInMiddleware          func(c *fiber.Ctx) error
	AlwaysRequireAuthenticationMiddleware func(c *fiber.Ctx) error
	ErrorHandler                          func(c *fiber.Ctx, err error) error
}

func SetupControllers(cfg Config, db *gorm.DB, sender Sender) Controllers {
	usersRepository := &model.UserRepository{DB: db}
	invitesRepository := &model.InviteTokenRepository{DB: db}
	activityRepository := &model.ActivityRepository{DB: db}
	pendingAuthRepository := &model.PendingAuthRepository{DB: db}

	authCfg := auth.Config{
		Secret:             cfg.JwtSecret,
		MinPasswordLength:  cfg.MinPasswordLength,
		SessionTimeout:     cfg.SessionTimeout,
		PendingAuthTimeout: cfg.PendingAuthTimeout,
	}

	usersCfg := user.Config{
		MinPasswordLength: cfg.MinPasswordLength,
	}

	invitesCfg := invite.Config{
		InviteTimeout: cfg.InviteTimeout,
		FQDN:          cfg.FQDN,
	}

	securityCfg := security.Config{
		Issuer: cfg.Issuer,
	}

	return Controllers{
		Auth:     auth.NewController(usersRepository, invitesRepository, pendingAuthRepository, activityRepository, authCfg),
		Users:    user.NewController(usersRepository, activityRepository, usersCfg),
		Invites:  invite.NewController(invitesRepository, activityRepository, sender, invitesCfg),
		Security: security.NewController(usersRepository, activityRepository, securityCfg),
		Home:     home.NewController(),
		AllowIfNotLoggedInMiddleware: jwtware.New(jwtware.Config{
			SigningKey:    cfg.JwtSecret,
			SigningMethod: "HS256",
			TokenLookup:   "cookie:" + auth.SessionCookieName,
			SuccessHandler: func(c *fiber.Ctx) error {
				return c.Redirect("/")
			},
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				return c.Next()
			},
		}),
		AlwaysRequireAuthenticationMiddleware: jwtware.New(jwtware.Config{
			SigningKey:    cfg.JwtSecret,
			SigningMethod: "HS256",
			TokenLookup:   "cookie:" + auth.SessionCookieName,
			SuccessHandler: func(c *fiber.Ctx) error {
				c.Locals("Session", jwtclaimsreader.SessionData(c))
				return c.Next()
			},
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				return c.Redirect("/login")
			},
		}),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			// Send custom error page
			err = c.Status(code).Render(
				fmt.Sprintf("errors/%d", code),
				fiber.Map{
					"Title":   "Equidade",
					"Session": jwtclaimsreader.SessionData(c),
				},
				"layout")

			if err != nil {
				log.Println(err)
				// In case the Render fails
				return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
			}

			return nil
		},
	}
}
