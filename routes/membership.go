package routes

import (
	"kickconnect.net/handlers"

	"github.com/gofiber/fiber/v2"
)

// registerMembershipRoutes mounts the /membership group.
func registerMembershipRoutes(app *fiber.App, requireAuth fiber.Handler) {
	handler := handlers.NewMemberHandler()

	group := app.Group("/membership")
	group.Use(requireAuth)

	group.Get("/get-members/:accountId", handler.ListMembers)
	group.Get("/get-member/:memberId", handler.GetMember)
	group.Post("/add-member", handler.AddMember)
	group.Put("/update-member/:memberId", handler.UpdateMember)
	group.Delete("/delete-member/:memberId", handler.DeactivateMember)

	group.Get("/get-plans", handler.ListPlans)
	group.Post("/add-plan", handler.AddPlan)
	group.Put("/update-plan/:planId", handler.UpdatePlan)

	group.Post("/record-attendance", handler.RecordAttendance)
	group.Get("/get-attendance/:memberId", handler.ListAttendance)
	group.Get("/get-location-attendance/:locationId", handler.ListLocationAttendance)
}
