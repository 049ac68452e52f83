package auth

import (
	"github.com/gofiber/fiber/v2"
)

// SignOut logs out the user and removes their session cookie.
func (a *Controller) SignOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   false,
		HTTPOnly: true,
	})

	return c.Redirect("/login")
}
