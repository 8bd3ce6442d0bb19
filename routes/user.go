package routes

import (
	"kickconnect.net/handlers"

	"github.com/gofiber/fiber/v2"
)

// registerUserRoutes mounts the /user group, including the photo upload
// used by the profile editor.
func registerUserRoutes(app *fiber.App, requireAuth fiber.Handler) {
	handler := handlers.NewUserHandler()
	uploadHandler := handlers.NewUploadHandler()
	scheduleHandler := handlers.NewScheduleHandler()

	group := app.Group("/user")
	group.Use(requireAuth)

	group.Get("/get-users", handler.ListUsers)
	group.Get("/get-account-users/:accountCode", handler.ListAccountUsers)
	group.Get("/get-filtered-users/:accountId/:isActive", handler.ListFilteredUsers)
	group.Get("/get-instructors", handler.ListInstructors)
	group.Get("/get-location-instructors/:locationId", handler.ListLocationInstructors)
	group.Get("/get-user/:userId", handler.GetUser)
	group.Post("/add-user", handler.AddUser)
	group.Post("/upload-photo", uploadHandler.UploadPhoto)
	group.Post("/upsert-profile-assignment/:scheduleLocationId/:primaryProfileId/:altProfileId", scheduleHandler.UpsertProfileAssignment)
	group.Put("/update-user/:userId", handler.UpdateUser)
	group.Put("/update-user-password/:userId", handler.ChangePassword)
	group.Put("/update-profile/:userId", handler.UpdateProfile)
	group.Delete("/delete-user/:userId", handler.DeactivateUser)
}
