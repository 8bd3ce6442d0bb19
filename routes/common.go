package routes

import (
	"kickconnect.net/handlers"

	"github.com/gofiber/fiber/v2"
)

// registerCommonRoutes mounts the shared reference-data group.
func registerCommonRoutes(app *fiber.App, requireAuth fiber.Handler) {
	handler := handlers.NewCommonHandler()

	group := app.Group("/common")
	group.Use(requireAuth)

	group.Get("/get-days", handler.GetDays)
	group.Get("/get-address-info-by-zip/:zip", handler.GetCityState)
	group.Get("/get-city-state/:zip", handler.GetCityState)
}
