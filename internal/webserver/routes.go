package webserver

import (
	"github.com/gofiber/fiber/v2"
)

func routes(app *fiber.App, controllers Controllers) {
	app.Get("/login", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.Login)
	app.Post("/login", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.SignIn)
	app.Get("/verify", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.VerifyForm)
	app.Post("/verify", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.Verify)
	app.Get("/register", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.RegisterForm)
	app.Post("/register", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.Register)

	// Everything below requires a valid session
	app.Use(controllers.AlwaysRequireAuthenticationMiddleware)

	app.Get("/", controllers.Home.Index)
	app.Get("/logout", controllers.Auth.SignOut)

	usersGroup := app.Group("/users", RequireAdmin)
	usersGroup.Get("/", controllers.Users.List)
	usersGroup.Get("/new", controllers.Users.New)
	usersGroup.Post("/new", controllers.Users.Create)
	usersGroup.Get("/:uuid<guid>/edit", controllers.Users.Edit)
	usersGroup.Post("/:uuid<guid>/edit", controllers.Users.Update)
	usersGroup.Post("/deactivate", controllers.Users.Deactivate)
	usersGroup.Post("/activate", controllers.Users.Activate)

	app.Get("/activity", RequireAdmin, controllers.Users.Activity)

	invitesGroup := app.Group("/invites", RequireAdmin)
	invitesGroup.Get("/", controllers.Invites.List)
	invitesGroup.Post("/", controllers.Invites.Create)

	securityGroup := app.Group("/security", RequireAdmin)
	securityGroup.Get("/two-factor", controllers.Security.Enroll)
	securityGroup.Post("/two-factor", controllers.Security.Confirm)
	securityGroup.Post("/two-factor/disable", controllers.Security.Disable)
}
