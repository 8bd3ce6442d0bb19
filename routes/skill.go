package routes

import (
	"kickconnect.net/handlers"

	"github.com/gofiber/fiber/v2"
)

// registerSkillRoutes mounts the /skill group.
func registerSkillRoutes(app *fiber.App, requireAuth fiber.Handler) {
	handler := handlers.NewSkillHandler()

	group := app.Group("/skill")
	group.Use(requireAuth)

	group.Get("/get-skills", handler.ListSkills)
	group.Get("/get-skill/:skillId", handler.GetSkill)
	group.Post("/add-skill", handler.AddSkill)
	group.Put("/update-skill/:skillId", handler.UpdateSkill)
	group.Delete("/delete-skill/:skillId", handler.DeleteSkill)
}
