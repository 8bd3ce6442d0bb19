package handlers

import (
	"kickconnect.net/services"

	"github.com/gofiber/fiber/v2"
)

// SkillHandler serves the skill catalogue endpoints.
type SkillHandler struct {
	service services.ISkillService
}

func NewSkillHandler() *SkillHandler {
	return &SkillHandler{service: services.NewSkillService()}
}

type skillRequest struct {
	SkillName        string `json:"skillName" validate:"required"`
	SkillDescription string `json:"skillDescription"`
}

// ListSkills returns the whole catalogue.
func (h *SkillHandler) ListSkills(c *fiber.Ctx) error {
	skills, err := h.service.ListSkills(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(skills)
}

// GetSkill returns one skill.
func (h *SkillHandler) GetSkill(c *fiber.Ctx) error {
	skillID, err := parseUintParam(c, "skillId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	skill, err := h.service.GetSkill(c.UserContext(), skillID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(skill)
}

// AddSkill creates a skill.
func (h *SkillHandler) AddSkill(c *fiber.Ctx) error {
	var req skillRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	skill, err := h.service.CreateSkill(c.UserContext(), req.SkillName, req.SkillDescription)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(skill)
}

// UpdateSkill renames a skill.
func (h *SkillHandler) UpdateSkill(c *fiber.Ctx) error {
	skillID, err := parseUintParam(c, "skillId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	var req skillRequest
	if err := parseAndValidate(c, &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	if err := h.service.UpdateSkill(c.UserContext(), skillID, req.SkillName, req.SkillDescription); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"skillId": skillID})
}

// DeleteSkill removes a skill.
func (h *SkillHandler) DeleteSkill(c *fiber.Ctx) error {
	skillID, err := parseUintParam(c, "skillId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	if err := h.service.DeleteSkill(c.UserContext(), skillID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"skillId": skillID})
}
