package routes

import (
	"time"

	"kickconnect.net/configs"
	"kickconnect.net/middlewares"
	"kickconnect.net/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

const requestTimeLimit = 10 * time.Second

// SetupRoutes wires the global middlewares and every route group.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(middlewares.RequestTimeout(requestTimeLimit))

	authService := services.NewAuthService()
	requireAuth := middlewares.RequireAuth(authService)

	registerAuthRoutes(app)
	registerAccountRoutes(app, requireAuth)
	registerLocationRoutes(app, requireAuth)
	registerEventRoutes(app, requireAuth)
	registerScheduleRoutes(app, requireAuth)
	registerUserRoutes(app, requireAuth)
	registerRoleRoutes(app, requireAuth)
	registerSkillRoutes(app, requireAuth)
	registerMembershipRoutes(app, requireAuth)
	registerCommonRoutes(app, requireAuth)

	app.Static("/uploads", configs.UploadDir())

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
	})
}
