package routes

import (
	"kickconnect.net/handlers"

	"github.com/gofiber/fiber/v2"
)

// registerRoleRoutes mounts the /role group.
func registerRoleRoutes(app *fiber.App, requireAuth fiber.Handler) {
	handler := handlers.NewRoleHandler()

	group := app.Group("/role")
	group.Use(requireAuth)

	group.Get("/get-roles", handler.ListRoles)
	group.Get("/get-assignable-roles", handler.ListAssignableRoles)
	group.Get("/get-role/:roleId", handler.GetRole)
	group.Post("/add-role", handler.AddRole)
	group.Put("/update-role/:roleId", handler.UpdateRole)
	group.Put("/reorder-role/:roleId", handler.ReorderRole)
	group.Delete("/delete-role/:roleId", handler.DeleteRole)
}
