package handlers

import (
	"errors"

	"kickconnect.net/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler serves sign-in.
type AuthHandler struct {
	service services.IAuthService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{service: services.NewAuthService()}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login checks credentials and returns a signed token with the user's
// detail row.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	result, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrUserNotActive) {
			return errorJSON(c, fiber.StatusUnauthorized, err)
		}
		return serviceError(c, err)
	}
	return c.JSON(result)
}
