package handlers

import (
	"strings"
	"time"

	"kickconnect.net/models"
	"kickconnect.net/services"

	"github.com/gofiber/fiber/v2"
)

// ScheduleHandler serves the scheduling endpoints.
type ScheduleHandler struct {
	service services.IScheduleService
}

func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{service: services.NewScheduleService()}
}

type addScheduleRequest struct {
	AccountID          uint                      `json:"accountId" validate:"required"`
	EventID            *uint                     `json:"eventId"`
	ExistingClassValue *uint                     `json:"existingClassValue"`
	Day                int                       `json:"day" validate:"min=0,max=6"`
	StartTime          string                    `json:"startTime" validate:"required"` // "6:30 PM"
	Duration           int                       `json:"duration" validate:"required,gt=0"`
	SelectedDate       string                    `json:"selectedDate"` // "2006-01-02"
	IsRepeat           bool                      `json:"isRepeat"`
	LocationValues     models.LocationAssignment `json:"locationValues"`
}

type updateScheduleRequest struct {
	AccountID      uint                      `json:"accountId" validate:"required"`
	Day            int                       `json:"day" validate:"min=0,max=6"`
	StartTime      string                    `json:"startTime" validate:"required"`
	Duration       int                       `json:"duration" validate:"required,gt=0"`
	SelectedDate   string                    `json:"selectedDate"`
	LocationValues models.LocationAssignment `json:"locationValues"`
}

type assignProfileRequest struct {
	ScheduleLocationID uint  `json:"scheduleLocationId" validate:"required"`
	ProfileID          uint  `json:"profileId" validate:"required"`
	AltProfileID       *uint `json:"altProfileId"`
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// AddSchedule creates a schedule entry with its location fan-out.
func (h *ScheduleHandler) AddSchedule(c *fiber.Ctx) error {
	var req addScheduleRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	selectedDate, err := parseDate(req.SelectedDate)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	main, err := h.service.AddSchedule(c.UserContext(), services.AddScheduleInput{
		AccountID:          req.AccountID,
		EventID:            req.EventID,
		ExistingClassValue: req.ExistingClassValue,
		Day:                req.Day,
		StartTime:          req.StartTime,
		Duration:           req.Duration,
		SelectedDate:       selectedDate,
		IsRepeat:           req.IsRepeat,
		LocationValues:     req.LocationValues,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(main)
}

// UpdateSchedule rewrites the slot and replaces the fan-out.
func (h *ScheduleHandler) UpdateSchedule(c *fiber.Ctx) error {
	scheduleMainID, err := parseUintParam(c, "scheduleMainId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	var req updateScheduleRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	selectedDate, err := parseDate(req.SelectedDate)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	err = h.service.UpdateSchedule(c.UserContext(), scheduleMainID, services.UpdateScheduleInput{
		AccountID:      req.AccountID,
		Day:            req.Day,
		StartTime:      req.StartTime,
		Duration:       req.Duration,
		SelectedDate:   selectedDate,
		LocationValues: req.LocationValues,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"scheduleMainId": scheduleMainID})
}

// DeleteSchedule removes the entry and its fan-out.
func (h *ScheduleHandler) DeleteSchedule(c *fiber.Ctx) error {
	scheduleMainID, err := parseUintParam(c, "scheduleMainId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	if err := h.service.DeleteSchedule(c.UserContext(), scheduleMainID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"scheduleMainId": scheduleMainID})
}

// AssignProfile sets the instructor assignment of one location row.
func (h *ScheduleHandler) AssignProfile(c *fiber.Ctx) error {
	var req assignProfileRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	created, err := h.service.AssignProfile(c.UserContext(), req.ScheduleLocationID, req.ProfileID, req.AltProfileID)
	if err != nil {
		return serviceError(c, err)
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"scheduleLocationId": req.ScheduleLocationID})
}

// UpsertProfileAssignment is the path-parameter form of the instructor
// assignment used by the profile editor. An altProfileId of "null" clears
// the alternate instructor.
func (h *ScheduleHandler) UpsertProfileAssignment(c *fiber.Ctx) error {
	scheduleLocationID, err := parseUintParam(c, "scheduleLocationId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	profileID, err := parseUintParam(c, "primaryProfileId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	var altProfileID *uint
	if raw := c.Params("altProfileId"); !strings.EqualFold(raw, "null") {
		id, err := parseUintParam(c, "altProfileId")
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, err)
		}
		altProfileID = &id
	}
	created, err := h.service.AssignProfile(c.UserContext(), scheduleLocationID, profileID, altProfileID)
	if err != nil {
		return serviceError(c, err)
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"scheduleLocationId": scheduleLocationID})
}

// GetMainSchedule lists this week's occurrences across all accounts.
func (h *ScheduleHandler) GetMainSchedule(c *fiber.Ctx) error {
	rows, err := h.service.ListMainSchedule(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(rows)
}

// GetLocationSchedule lists this week's occurrences at one location.
func (h *ScheduleHandler) GetLocationSchedule(c *fiber.Ctx) error {
	locationID, err := parseUintParam(c, "locationId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	rows, err := h.service.ListLocationSchedule(c.UserContext(), locationID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(rows)
}

// GetNextClass returns the soonest upcoming occurrence at a location. An
// empty week yields an empty body, not an error.
func (h *ScheduleHandler) GetNextClass(c *fiber.Ctx) error {
	locationID, err := parseUintParam(c, "locationId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	next, err := h.service.NextClass(c.UserContext(), locationID)
	if err != nil {
		return serviceError(c, err)
	}
	if next == nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(next)
}

// GetLocationClassSchedule lists the display rows for one location of one
// account.
func (h *ScheduleHandler) GetLocationClassSchedule(c *fiber.Ctx) error {
	locationID, err := parseUintParam(c, "locationId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	accountID, err := parseUintParam(c, "accountId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	rows, err := h.service.ListLocationClassSchedule(c.UserContext(), locationID, accountID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(rows)
}

// GetDurations lists the selectable class lengths.
func (h *ScheduleHandler) GetDurations(c *fiber.Ctx) error {
	rows, err := h.service.ListDurations(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(rows)
}

// GetReservationCounts lists the selectable class capacities.
func (h *ScheduleHandler) GetReservationCounts(c *fiber.Ctx) error {
	rows, err := h.service.ListReservationCounts(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(rows)
}
