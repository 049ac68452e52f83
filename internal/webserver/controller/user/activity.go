package user

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nbrandao/equidade/internal/webserver/model"
)

// Activity renders the audit trail of privileged actions
func (u *Controller) Activity(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	activities, err := u.activity.List(page, model.ResultsPerPage)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("users/activity", fiber.Map{
		"Title":      "Activity",
		"Session":    c.Locals("Session"),
		"Activities": activities.Hits(),
		"Page":       activities.Page(),
		"TotalPages": activities.TotalPages(),
	}, "layout")
}
