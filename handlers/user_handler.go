package handlers

import (
	"strconv"

	"kickconnect.net/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler serves the staff directory endpoints.
type UserHandler struct {
	service services.IUserService
}

func NewUserHandler() *UserHandler {
	return &UserHandler{service: services.NewUserService()}
}

type userRequest struct {
	AccountID uint   `json:"accountId"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Phone2    string `json:"phone2"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Password  string `json:"password"`
	PhotoURL  string `json:"photoURL"`
	IsActive  int    `json:"isActive"`
	RoleIDs   []uint `json:"roleId" validate:"required,min=1"`
}

func (r userRequest) input() services.UserInput {
	return services.UserInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Phone2:   r.Phone2,
		Address:  r.Address,
		City:     r.City,
		State:    r.State,
		Zip:      r.Zip,
		Password: r.Password,
		PhotoURL: r.PhotoURL,
		IsActive: r.IsActive,
		RoleIDs:  r.RoleIDs,
	}
}

type profileRequest struct {
	Description     string `json:"description"`
	Skills          string `json:"skills"`
	URL             string `json:"url"`
	PrimaryLocation uint   `json:"primaryLocation"`
	AltLocations    []uint `json:"altLocations"`
}

type changePasswordRequest struct {
	AccountID   uint   `json:"accountId" validate:"required"`
	AccountCode string `json:"accountCode" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// AddUser creates a staff login with its role set.
func (h *UserHandler) AddUser(c *fiber.Ctx) error {
	var req userRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	user, err := h.service.CreateUser(c.UserContext(), req.AccountID, req.input())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUser returns one user with roles, profile and locations.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	detail, err := h.service.GetUser(c.UserContext(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(detail)
}

// ListUsers returns the full staff directory.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(users)
}

// ListAccountUsers returns the staff of the account behind a provisioning
// code.
func (h *UserHandler) ListAccountUsers(c *fiber.Ctx) error {
	code := c.Params("accountCode")
	users, err := h.service.ListAccountUsers(c.UserContext(), code)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(users)
}

// ListFilteredUsers returns an account's staff filtered by active status.
func (h *UserHandler) ListFilteredUsers(c *fiber.Ctx) error {
	accountID, err := parseUintParam(c, "accountId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	isActive, err := strconv.Atoi(c.Params("isActive"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	users, err := h.service.ListFilteredUsers(c.UserContext(), accountID, isActive)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(users)
}

// ListInstructors returns everyone holding the instructor role.
func (h *UserHandler) ListInstructors(c *fiber.Ctx) error {
	rows, err := h.service.ListInstructors(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(rows)
}

// ListLocationInstructors returns the instructors teaching at a location.
func (h *UserHandler) ListLocationInstructors(c *fiber.Ctx) error {
	locationID, err := parseUintParam(c, "locationId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	rows, err := h.service.ListLocationInstructors(c.UserContext(), locationID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(rows)
}

// UpdateUser rewrites a login and replaces its role set.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	var req userRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	if err := h.service.UpdateUser(c.UserContext(), userID, req.input()); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"userId": userID})
}

// DeactivateUser disables a login.
func (h *UserHandler) DeactivateUser(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	if err := h.service.DeactivateUser(c.UserContext(), userID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"userId": userID})
}

// ChangePassword stores a new password after checking the account code.
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	var req changePasswordRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	err = h.service.ChangePassword(c.UserContext(), userID, req.AccountID, req.AccountCode, req.NewPassword)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"userId": userID})
}

// UpdateProfile rewrites an instructor profile and its location links.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	var req profileRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	err = h.service.UpdateProfile(c.UserContext(), userID, services.ProfileInput{
		Description:     req.Description,
		Skills:          req.Skills,
		URL:             req.URL,
		PrimaryLocation: req.PrimaryLocation,
		AltLocations:    req.AltLocations,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"userId": userID})
}
