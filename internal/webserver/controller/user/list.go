package user

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nbrandao/equidade/internal/webserver/model"
)

// List renders the paginated users list
func (u *Controller) List(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	users, err := u.repository.List(page, model.ResultsPerPage, c.Query("filter"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("users/index", fiber.Map{
		"Title":      "Users",
		"Users":      users.Hits(),
		"Page":       users.Page(),
		"TotalPages": users.TotalPages(),
		"Filter":     c.Query("filter"),
		"Session":    c.Locals("Session"),
	}, "layout")
}
