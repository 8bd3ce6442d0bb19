package handlers

import (
	"kickconnect.net/services"

	"github.com/gofiber/fiber/v2"
)

// RoleHandler serves the role catalogue endpoints.
type RoleHandler struct {
	service services.IRoleService
}

func NewRoleHandler() *RoleHandler {
	return &RoleHandler{service: services.NewRoleService()}
}

type roleRequest struct {
	RoleName        string `json:"roleName" validate:"required"`
	RoleDescription string `json:"roleDescription"`
}

type reorderRoleRequest struct {
	RoleOrderID int `json:"roleOrderId" validate:"required,gt=0"`
}

// ListRoles returns the whole catalogue in display order.
func (h *RoleHandler) ListRoles(c *fiber.Ctx) error {
	roles, err := h.service.ListRoles(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(roles)
}

// ListAssignableRoles returns the roles a tenant may hand out.
func (h *RoleHandler) ListAssignableRoles(c *fiber.Ctx) error {
	roles, err := h.service.ListAssignableRoles(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(roles)
}

// GetRole returns one role.
func (h *RoleHandler) GetRole(c *fiber.Ctx) error {
	roleID, err := parseUintParam(c, "roleId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	role, err := h.service.GetRole(c.UserContext(), roleID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(role)
}

// AddRole appends a custom role to the catalogue.
func (h *RoleHandler) AddRole(c *fiber.Ctx) error {
	var req roleRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	role, err := h.service.CreateRole(c.UserContext(), req.RoleName, req.RoleDescription)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(role)
}

// UpdateRole renames a role.
func (h *RoleHandler) UpdateRole(c *fiber.Ctx) error {
	roleID, err := parseUintParam(c, "roleId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	var req roleRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	if err := h.service.UpdateRole(c.UserContext(), roleID, req.RoleName, req.RoleDescription); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"roleId": roleID})
}

// ReorderRole moves a role to a new display position.
func (h *RoleHandler) ReorderRole(c *fiber.Ctx) error {
	roleID, err := parseUintParam(c, "roleId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	var req reorderRoleRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	if err := h.service.ReorderRole(c.UserContext(), roleID, req.RoleOrderID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"roleId": roleID})
}

// DeleteRole removes a custom role.
func (h *RoleHandler) DeleteRole(c *fiber.Ctx) error {
	roleID, err := parseUintParam(c, "roleId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	if err := h.service.DeleteRole(c.UserContext(), roleID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"roleId": roleID})
}
