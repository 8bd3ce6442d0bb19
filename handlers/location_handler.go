package handlers

import (
	"kickconnect.net/services"

	"github.com/gofiber/fiber/v2"
)

// LocationHandler serves the location endpoints.
type LocationHandler struct {
	service services.ILocationService
}

func NewLocationHandler() *LocationHandler {
	return &LocationHandler{service: services.NewLocationService()}
}

type locationRequest struct {
	AccountID       uint   `json:"accountId"`
	LocationName    string `json:"locationName" validate:"required"`
	LocationAddress string `json:"locationAddress"`
	LocationCity    string `json:"locationCity"`
	LocationState   string `json:"locationState"`
	LocationZip     string `json:"locationZip"`
	LocationPhone   string `json:"locationPhone"`
	LocationEmail   string `json:"locationEmail" validate:"omitempty,email"`
	IsActive        bool   `json:"isActive"`
}

func (r locationRequest) input() services.LocationInput {
	return services.LocationInput{
		LocationName:    r.LocationName,
		LocationAddress: r.LocationAddress,
		LocationCity:    r.LocationCity,
		LocationState:   r.LocationState,
		LocationZip:     r.LocationZip,
		LocationPhone:   r.LocationPhone,
		LocationEmail:   r.LocationEmail,
		IsActive:        r.IsActive,
	}
}

// AddLocation creates a site under an account.
func (h *LocationHandler) AddLocation(c *fiber.Ctx) error {
	var req locationRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	location, err := h.service.CreateLocation(c.UserContext(), req.AccountID, req.input())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

// GetLocation returns one location by id.
func (h *LocationHandler) GetLocation(c *fiber.Ctx) error {
	locationID, err := parseUintParam(c, "locationId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	location, err := h.service.GetLocation(c.UserContext(), locationID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(location)
}

// ListLocations returns every location.
func (h *LocationHandler) ListLocations(c *fiber.Ctx) error {
	locations, err := h.service.ListLocations(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(locations)
}

// ListActiveLocations returns the active locations.
func (h *LocationHandler) ListActiveLocations(c *fiber.Ctx) error {
	locations, err := h.service.ListActiveLocations(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(locations)
}

// ListInactiveLocations returns the deactivated locations.
func (h *LocationHandler) ListInactiveLocations(c *fiber.Ctx) error {
	locations, err := h.service.ListInactiveLocations(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(locations)
}

// ListAccountLocations returns the active locations of one account.
func (h *LocationHandler) ListAccountLocations(c *fiber.Ctx) error {
	accountID, err := parseUintParam(c, "accountId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	locations, err := h.service.ListAccountLocations(c.UserContext(), accountID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(locations)
}

// UpdateLocation rewrites a location's fields including its active flag.
func (h *LocationHandler) UpdateLocation(c *fiber.Ctx) error {
	locationID, err := parseUintParam(c, "locationId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	var req locationRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	if err := h.service.UpdateLocation(c.UserContext(), locationID, req.input()); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"locationId": locationID})
}
