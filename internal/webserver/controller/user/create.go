package user

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nbrandao/equidade/internal/webserver/jwtclaimsreader"
	"github.com/nbrandao/equidade/internal/webserver/model"
)

// Create gathers information coming from the new user form and creates a new user
func (u *Controller) Create(c *fiber.Ctx) error {
	role, _ := strconv.Atoi(c.FormValue("role"))
	user := model.User{
		Name:     c.FormValue("name"),
		Username: strings.ToLower(c.FormValue("username")),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Role:     role,
		Active:   true,
		Uuid:     uuid.NewString(),
	}

	errs := user.Validate(u.config.MinPasswordLength)
	if errs = user.ConfirmPassword(c.FormValue("confirm-password"), u.config.MinPasswordLength, errs); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).Render("users/new", fiber.Map{
			"Title":           "Add user",
			"Session":         c.Locals("Session"),
			"UsernamePattern": model.UsernamePattern,
			"Errors":          errs,
			"User":            user,
		}, "layout")
	}

	hash, err := model.HashPassword(user.Password)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	user.Password = hash

	if err := u.repository.Create(&user); err != nil {
		if errors.Is(err, model.ErrDuplicateIdentity) {
			errs["email"] = "A user with this email or username already exists"
			return c.Status(fiber.StatusBadRequest).Render("users/new", fiber.Map{
				"Title":           "Add user",
				"Session":         c.Locals("Session"),
				"UsernamePattern": model.UsernamePattern,
				"Errors":          errs,
				"User":            user,
			}, "layout")
		}
		return fiber.ErrInternalServerError
	}

	session := jwtclaimsreader.SessionData(c)
	u.activity.Record(session.ID, "user created", &user.ID)

	return c.Redirect("/users")
}
