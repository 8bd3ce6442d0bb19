package handlers

import (
	"time"

	"kickconnect.net/services"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler serves the membership endpoints.
type MemberHandler struct {
	service services.IMemberService
}

func NewMemberHandler() *MemberHandler {
	return &MemberHandler{service: services.NewMemberService()}
}

type memberRequest struct {
	AccountID      uint    `json:"accountId"`
	MemberPlanID   uint    `json:"memberPlanId" validate:"required"`
	HomeLocationID uint    `json:"homeLocationId" validate:"required"`
	FirstName      string  `json:"firstName" validate:"required"`
	LastName       string  `json:"lastName" validate:"required"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email" validate:"omitempty,email"`
	Birthday       string  `json:"birthday"`
	ContactName    string  `json:"contactName"`
	ContactPhone   string  `json:"contactPhone"`
	SignupDate     string  `json:"signupDate"`
	RenewalDate    string  `json:"renewalDate"`
	IsActive       bool    `json:"isActive"`
}

func (r memberRequest) input() (services.MemberInput, error) {
	birthday, err := parseDate(r.Birthday)
	if err != nil {
		return services.MemberInput{}, err
	}
	signup, err := parseDate(r.SignupDate)
	if err != nil {
		return services.MemberInput{}, err
	}
	renewal, err := parseDate(r.RenewalDate)
	if err != nil {
		return services.MemberInput{}, err
	}
	return services.MemberInput{
		MemberPlanID:   r.MemberPlanID,
		HomeLocationID: r.HomeLocationID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Phone:          r.Phone,
		Email:          r.Email,
		Birthday:       birthday,
		ContactName:    r.ContactName,
		ContactPhone:   r.ContactPhone,
		SignupDate:     signup,
		RenewalDate:    renewal,
		IsActive:       r.IsActive,
	}, nil
}

type planRequest struct {
	PlanDescription string  `json:"planDescription" validate:"required"`
	PlanCost        float64 `json:"planCost" validate:"min=0"`
}

type attendanceRequest struct {
	MemberID       uint   `json:"memberId" validate:"required"`
	LocationID     uint   `json:"locationId" validate:"required"`
	EventID        uint   `json:"eventId" validate:"required"`
	AttendanceDate string `json:"attendanceDate" validate:"required"`
}

// AddMember creates a member under an account.
func (h *MemberHandler) AddMember(c *fiber.Ctx) error {
	var req memberRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	input, err := req.input()
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	member, err := h.service.CreateMember(c.UserContext(), req.AccountID, input)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

// GetMember returns one member.
func (h *MemberHandler) GetMember(c *fiber.Ctx) error {
	memberID, err := parseUintParam(c, "memberId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	member, err := h.service.GetMember(c.UserContext(), memberID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(member)
}

// ListMembers returns the members of an account with plan and home
// location resolved.
func (h *MemberHandler) ListMembers(c *fiber.Ctx) error {
	accountID, err := parseUintParam(c, "accountId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	rows, err := h.service.ListMembers(c.UserContext(), accountID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(rows)
}

// UpdateMember rewrites a member's fields.
func (h *MemberHandler) UpdateMember(c *fiber.Ctx) error {
	memberID, err := parseUintParam(c, "memberId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	var req memberRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	input, err := req.input()
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	if err := h.service.UpdateMember(c.UserContext(), memberID, input); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"memberId": memberID})
}

// DeactivateMember disables a member.
func (h *MemberHandler) DeactivateMember(c *fiber.Ctx) error {
	memberID, err := parseUintParam(c, "memberId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	if err := h.service.DeactivateMember(c.UserContext(), memberID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"memberId": memberID})
}

// ListPlans returns the membership plans.
func (h *MemberHandler) ListPlans(c *fiber.Ctx) error {
	plans, err := h.service.ListPlans(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(plans)
}

// AddPlan creates a membership plan.
func (h *MemberHandler) AddPlan(c *fiber.Ctx) error {
	var req planRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	plan, err := h.service.CreatePlan(c.UserContext(), req.PlanDescription, req.PlanCost)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

// UpdatePlan rewrites a membership plan.
func (h *MemberHandler) UpdatePlan(c *fiber.Ctx) error {
	planID, err := parseUintParam(c, "planId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	var req planRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	if err := h.service.UpdatePlan(c.UserContext(), planID, req.PlanDescription, req.PlanCost); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"planId": planID})
}

// RecordAttendance logs a member's visit to a class.
func (h *MemberHandler) RecordAttendance(c *fiber.Ctx) error {
	var req attendanceRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	date, err := time.Parse("2006-01-02", req.AttendanceDate)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	err = h.service.RecordAttendance(c.UserContext(), req.MemberID, req.LocationID, req.EventID, date)
	if err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// ListAttendance returns a member's visit history.
func (h *MemberHandler) ListAttendance(c *fiber.Ctx) error {
	memberID, err := parseUintParam(c, "memberId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	rows, err := h.service.ListAttendance(c.UserContext(), memberID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(rows)
}

// ListLocationAttendance returns a location's visits between two dates.
func (h *MemberHandler) ListLocationAttendance(c *fiber.Ctx) error {
	locationID, err := parseUintParam(c, "locationId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	rows, err := h.service.ListLocationAttendance(c.UserContext(), locationID, from, to)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(rows)
}
