package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nbrandao/equidade/internal/webserver/jwtclaimsreader"
)

type Controller struct {
}

func NewController() *Controller {
	return &Controller{}
}

// Index renders the dashboard for the logged-in user
func (h *Controller) Index(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	return c.Render("index", fiber.Map{
		"Title":   "Dashboard",
		"Session": session,
	}, "layout")
}
