package handlers

import (
	"context"
	"errors"

	"kickconnect.net/configs/configslog"
	"kickconnect.net/repositories"
	"kickconnect.net/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// errorJSON writes the uniform error body every endpoint uses.
func errorJSON(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// serviceError maps a service failure onto its HTTP status. Validation
// failures are 400, missing rows 404, duplicates 409, timeouts and
// everything unexpected 500.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case isNotFound(err):
		return errorJSON(c, fiber.StatusNotFound, err)
	case errors.Is(err, services.ErrUserDuplicate):
		return errorJSON(c, fiber.StatusConflict, err)
	case isValidation(err):
		return errorJSON(c, fiber.StatusBadRequest, err)
	case errors.Is(err, context.DeadlineExceeded):
		configslog.Log.Error("request timed out", zap.String("path", c.Path()))
		return errorJSON(c, fiber.StatusInternalServerError, errors.New("the request timed out"))
	default:
		configslog.Log.Error("unhandled service error", zap.String("path", c.Path()), zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, errors.New("an internal error occurred"))
	}
}

func isNotFound(err error) bool {
	for _, target := range []error{
		repositories.ErrNotFound,
		services.ErrScheduleNotFound,
		services.ErrEventNotFound,
		services.ErrLocationNotFound,
		services.ErrAccountNotFound,
		services.ErrUserNotFound,
		services.ErrProfileNotFound,
		services.ErrRoleNotFound,
		services.ErrSkillNotFound,
		services.ErrMemberNotFound,
		services.ErrPlanNotFound,
		services.ErrZipNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isValidation(err error) bool {
	for _, target := range []error{
		services.ErrScheduleEventRequired,
		services.ErrScheduleInvalidDay,
		services.ErrScheduleInvalidTime,
		services.ErrScheduleNoLocations,
		services.ErrEventNameRequired,
		services.ErrLocationNameRequired,
		services.ErrAccountNameRequired,
		services.ErrAccountOwnerRequired,
		services.ErrUserInvalidInput,
		services.ErrRoleNameRequired,
		services.ErrRoleProtected,
		services.ErrSkillNameRequired,
		services.ErrMemberNameRequired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// parseUintParam reads a positive integer path parameter.
func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	v, err := c.ParamsInt(name)
	if err != nil || v <= 0 {
		return 0, errors.New(name + " must be a positive integer")
	}
	return uint(v), nil
}
