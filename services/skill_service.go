package services

import (
	"context"
	"errors"
	"strings"

	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"
	"kickconnect.net/repositories"

	"go.uber.org/zap"
)

type SkillServiceError string

func (e SkillServiceError) Error() string { return string(e) }

const (
	ErrSkillNotFound     SkillServiceError = "skill not found"
	ErrSkillNameRequired SkillServiceError = "skill name is required"
	ErrSkillWriteFailed  SkillServiceError = "skill could not be saved"
)

// ISkillService manages the skill catalogue instructors tag their profiles
// with.
type ISkillService interface {
	ListSkills(ctx context.Context) ([]models.Skill, error)
	GetSkill(ctx context.Context, skillID uint) (*models.Skill, error)
	CreateSkill(ctx context.Context, name, description string) (*models.Skill, error)
	UpdateSkill(ctx context.Context, skillID uint, name, description string) error
	DeleteSkill(ctx context.Context, skillID uint) error
}

type SkillService struct {
	repo repositories.ISkillRepository
}

func NewSkillService() ISkillService {
	return &SkillService{repo: repositories.NewSkillRepository()}
}

func (s *SkillService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return s.repo.ListAll(ctx)
}

func (s *SkillService) GetSkill(ctx context.Context, skillID uint) (*models.Skill, error) {
	skill, err := s.repo.FindByID(ctx, skillID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) CreateSkill(ctx context.Context, name, description string) (*models.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrSkillNameRequired
	}
	skill := &models.Skill{SkillName: name, SkillDescription: description}
	if err := s.repo.Create(ctx, skill); err != nil {
		configslog.Log.Error("SkillService.CreateSkill failed", zap.String("name", name), zap.Error(err))
		return nil, ErrSkillWriteFailed
	}
	return skill, nil
}

func (s *SkillService) UpdateSkill(ctx context.Context, skillID uint, name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrSkillNameRequired
	}
	if err := s.repo.Update(ctx, skillID, name, description); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrSkillNotFound
		}
		return ErrSkillWriteFailed
	}
	return nil
}

func (s *SkillService) DeleteSkill(ctx context.Context, skillID uint) error {
	if err := s.repo.Delete(ctx, skillID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrSkillNotFound
		}
		return ErrSkillWriteFailed
	}
	return nil
}

var _ ISkillService = (*SkillService)(nil)
