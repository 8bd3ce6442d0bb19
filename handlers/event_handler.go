package handlers

import (
	"kickconnect.net/services"

	"github.com/gofiber/fiber/v2"
)

// EventHandler serves the class catalogue endpoints.
type EventHandler struct {
	service services.IEventService
}

func NewEventHandler() *EventHandler {
	return &EventHandler{service: services.NewEventService()}
}

type eventRequest struct {
	AccountID        uint    `json:"accountId"`
	EventName        string  `json:"eventName" validate:"required"`
	EventDescription string  `json:"eventDescription"`
	IsReservation    bool    `json:"isReservation"`
	ReservationCount int     `json:"reservationCount" validate:"min=0"`
	IsCostToAttend   bool    `json:"isCostToAttend"`
	CostToAttend     float64 `json:"costToAttend" validate:"min=0"`
	IsActive         bool    `json:"isActive"`
}

func (r eventRequest) input() services.EventInput {
	return services.EventInput{
		EventName:        r.EventName,
		EventDescription: r.EventDescription,
		IsReservation:    r.IsReservation,
		ReservationCount: r.ReservationCount,
		IsCostToAttend:   r.IsCostToAttend,
		CostToAttend:     r.CostToAttend,
		IsActive:         r.IsActive,
	}
}

// AddEvent creates a class under an account.
func (h *EventHandler) AddEvent(c *fiber.Ctx) error {
	var req eventRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	event, err := h.service.CreateEvent(c.UserContext(), req.AccountID, req.input())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// GetEvent returns one class of one account.
func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	accountID, err := parseUintParam(c, "accountId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	eventID, err := parseUintParam(c, "eventId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	event, err := h.service.GetEvent(c.UserContext(), accountID, eventID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(event)
}

// ListEvents returns every class of an account, active or not.
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	accountID, err := parseUintParam(c, "accountId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	events, err := h.service.ListEvents(c.UserContext(), accountID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(events)
}

// ListActiveEvents returns the schedulable classes of an account.
func (h *EventHandler) ListActiveEvents(c *fiber.Ctx) error {
	accountID, err := parseUintParam(c, "accountId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	events, err := h.service.ListActiveEvents(c.UserContext(), accountID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(events)
}

// UpdateEvent rewrites a class's fields.
func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := parseUintParam(c, "eventId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	var req eventRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	if err := h.service.UpdateEvent(c.UserContext(), req.AccountID, eventID, req.input()); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"eventId": eventID})
}

// DeactivateEvent retires a class without deleting it.
func (h *EventHandler) DeactivateEvent(c *fiber.Ctx) error {
	accountID, err := parseUintParam(c, "accountId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	eventID, err := parseUintParam(c, "eventId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	if err := h.service.DeactivateEvent(c.UserContext(), accountID, eventID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"eventId": eventID})
}
