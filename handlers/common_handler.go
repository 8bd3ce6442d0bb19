package handlers

import (
	"kickconnect.net/services"

	"github.com/gofiber/fiber/v2"
)

// CommonHandler serves the shared reference-data endpoints.
type CommonHandler struct {
	service services.ICommonService
}

func NewCommonHandler() *CommonHandler {
	return &CommonHandler{service: services.NewCommonService()}
}

// GetDays lists the day names in week order.
func (h *CommonHandler) GetDays(c *fiber.Ctx) error {
	days, err := h.service.ListDays(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(days)
}

// GetCityState resolves a zip code for address autofill. Unknown zips are
// a 404.
func (h *CommonHandler) GetCityState(c *fiber.Ctx) error {
	row, err := h.service.LookupZip(c.UserContext(), c.Params("zip"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(row)
}
