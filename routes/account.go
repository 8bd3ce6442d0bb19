package routes

import (
	"kickconnect.net/handlers"

	"github.com/gofiber/fiber/v2"
)

// registerAccountRoutes mounts the /account group.
func registerAccountRoutes(app *fiber.App, requireAuth fiber.Handler) {
	handler := handlers.NewAccountHandler()

	group := app.Group("/account")
	group.Use(requireAuth)

	group.Get("/get-accounts", handler.ListAccounts)
	group.Get("/get-account/:accountId", handler.GetAccount)
	group.Get("/get-account-by-code/:accountCode", handler.GetAccountByCode)
}
