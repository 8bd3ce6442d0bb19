package routes

import (
	"kickconnect.net/handlers"

	"github.com/gofiber/fiber/v2"
)

// registerEventRoutes mounts the /event group.
func registerEventRoutes(app *fiber.App, requireAuth fiber.Handler) {
	handler := handlers.NewEventHandler()

	group := app.Group("/event")
	group.Use(requireAuth)

	group.Get("/get-event-list/:accountId", handler.ListEvents)
	group.Get("/get-events/:accountId", handler.ListEvents)
	group.Get("/get-active-event-list/:accountId", handler.ListActiveEvents)
	group.Get("/get-active-events/:accountId", handler.ListActiveEvents)
	group.Get("/get-event-by-id/:accountId/:eventId", handler.GetEvent)
	group.Get("/get-event/:accountId/:eventId", handler.GetEvent)
	group.Post("/add-event", handler.AddEvent)
	group.Put("/update-event/:eventId", handler.UpdateEvent)
	group.Delete("/deactivate-event/:accountId/:eventId", handler.DeactivateEvent)
	group.Delete("/delete-event/:accountId/:eventId", handler.DeactivateEvent)
}
