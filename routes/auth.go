package routes

import (
	"kickconnect.net/handlers"

	"github.com/gofiber/fiber/v2"
)

// registerAuthRoutes mounts the public sign-in and signup endpoints.
func registerAuthRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler()
	accountHandler := handlers.NewAccountHandler()

	app.Post("/login/user-login", authHandler.Login)
	app.Post("/login", authHandler.Login)
	app.Post("/signup", accountHandler.Signup)
}
