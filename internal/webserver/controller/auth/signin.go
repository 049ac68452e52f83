package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/nbrandao/equidade/internal/webserver/model"
)

const (
	SessionCookieName = "equidade"
	PendingCookieName = "equidade_pending"
)

// SignIn checks the user's credentials. Accounts with two-factor
// authentication enabled are parked in a short-lived pending record and sent
// to the verification step instead of getting a session right away.
func (a *Controller) SignIn(c *fiber.Ctx) error {
	user, err := a.repository.FindByEmail(c.FormValue("email"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if user == nil || !model.CheckPassword(user.Password, c.FormValue("password")) {
		return c.Status(fiber.StatusUnauthorized).Render("auth/login", fiber.Map{
			"Title": "Login",
			"Error": "Wrong email or password",
		}, "layout")
	}

	if !user.Active {
		log.Printf("sign in rejected for user %d: %s\n", user.ID, model.ErrAccountInactive)
		return c.Status(fiber.StatusUnauthorized).Render("auth/login", fiber.Map{
			"Title": "Login",
			"Error": "Account deactivated, contact an administrator",
		}, "layout")
	}

	if user.TwoFactorEnabled {
		pending := &model.PendingAuth{
			Uuid:      uuid.NewString(),
			UserID:    user.ID,
			ExpiresAt: time.Now().UTC().Add(a.config.PendingAuthTimeout),
		}
		if err := a.pendingAuth.Create(pending); err != nil {
			return fiber.ErrInternalServerError
		}

		c.Cookie(&fiber.Cookie{
			Name:     PendingCookieName,
			Value:    pending.Uuid,
			Path:     "/",
			MaxAge:   int(a.config.PendingAuthTimeout.Seconds()),
			HTTPOnly: true,
		})
		return c.Redirect("/verify")
	}

	return a.startSession(c, user)
}

func (a *Controller) startSession(c *fiber.Ctx, user *model.User) error {
	expiration := time.Now().Add(a.config.SessionTimeout)
	signedToken, err := GenerateToken(user, expiration, a.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    signedToken,
		Path:     "/",
		MaxAge:   int(a.config.SessionTimeout.Seconds()),
		Secure:   false,
		HTTPOnly: true,
	})

	return c.Redirect("/")
}

func GenerateToken(user *model.User, expiration time.Time, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userdata": model.User{
			ID:       user.ID,
			Name:     user.Name,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
			Uuid:     user.Uuid,
		},
		"exp": jwt.NewNumericDate(expiration),
	},
	)

	return token.SignedString(secret)
}
