package routes

import (
	"kickconnect.net/handlers"

	"github.com/gofiber/fiber/v2"
)

// registerLocationRoutes mounts the /location group.
func registerLocationRoutes(app *fiber.App, requireAuth fiber.Handler) {
	handler := handlers.NewLocationHandler()

	group := app.Group("/location")
	group.Use(requireAuth)

	group.Get("/get-locations", handler.ListLocations)
	group.Get("/get-active-locations", handler.ListActiveLocations)
	group.Get("/get-inactive-locations", handler.ListInactiveLocations)
	group.Get("/get-locations-by-acct-id/:accountId", handler.ListAccountLocations)
	group.Get("/get-account-locations/:accountId", handler.ListAccountLocations)
	group.Get("/get-locations-by-id/:locationId", handler.GetLocation)
	group.Get("/get-location/:locationId", handler.GetLocation)
	group.Post("/add-location", handler.AddLocation)
	group.Put("/update-location/:locationId", handler.UpdateLocation)
}
