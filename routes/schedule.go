package routes

import (
	"kickconnect.net/handlers"

	"github.com/gofiber/fiber/v2"
)

// registerScheduleRoutes mounts the /schedule group.
func registerScheduleRoutes(app *fiber.App, requireAuth fiber.Handler) {
	handler := handlers.NewScheduleHandler()

	group := app.Group("/schedule")
	group.Use(requireAuth)

	group.Get("/get-durations", handler.GetDurations)
	group.Get("/get-reservationCounts", handler.GetReservationCounts)
	group.Get("/get-reservation-counts", handler.GetReservationCounts)
	group.Get("/get-main-schedule", handler.GetMainSchedule)
	group.Get("/get-location-assignment-schedule/:locationId", handler.GetLocationSchedule)
	group.Get("/get-next-class/:locationId", handler.GetNextClass)
	group.Get("/get-location-class-schedule/:locationId/:accountId", handler.GetLocationClassSchedule)
	group.Post("/add-schedule", handler.AddSchedule)
	group.Post("/add-schedule-profile", handler.AssignProfile)
	group.Put("/update-schedule/:scheduleMainId", handler.UpdateSchedule)
	group.Delete("/delete-schedule-event/:scheduleMainId", handler.DeleteSchedule)
}
