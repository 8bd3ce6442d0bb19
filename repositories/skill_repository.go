package repositories

import (
	"context"
	"errors"

	"kickconnect.net/configs/configsdatabase"
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ISkillRepository is persistence for the skill catalogue instructors pick
// from.
type ISkillRepository interface {
	ListAll(ctx context.Context) ([]models.Skill, error)
	FindByID(ctx context.Context, skillID uint) (*models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) error
	Update(ctx context.Context, skillID uint, name, description string) error
	Delete(ctx context.Context, skillID uint) error
}

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository() ISkillRepository {
	return &SkillRepository{db: configsdatabase.GetDB()}
}

func NewSkillRepositoryTx(tx *gorm.DB) ISkillRepository {
	return &SkillRepository{db: tx}
}

func (r *SkillRepository) ListAll(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.WithContext(ctx).Order("skill_name ASC").Find(&skills).Error
	if err != nil {
		configslog.Log.Error("SkillRepository.ListAll: DB error", zap.Error(err))
		return nil, err
	}
	return skills, nil
}

func (r *SkillRepository) FindByID(ctx context.Context, skillID uint) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.WithContext(ctx).First(&skill, "skill_id = ?", skillID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SkillRepository.FindByID: DB error", zap.Uint("skillId", skillID), zap.Error(err))
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	if skill.CreatedBy == "" {
		skill.CreatedBy = "API add-skill"
	}
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *SkillRepository) Update(ctx context.Context, skillID uint, name, description string) error {
	result := r.db.WithContext(ctx).Model(&models.Skill{}).
		Where("skill_id = ?", skillID).
		Updates(map[string]any{
			"skill_name":        name,
			"skill_description": description,
			"updated_by":        "API update-skill",
		})
	if result.Error != nil {
		configslog.Log.Error("SkillRepository.Update: DB error", zap.Uint("skillId", skillID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SkillRepository) Delete(ctx context.Context, skillID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Skill{}, "skill_id = ?", skillID)
	if result.Error != nil {
		configslog.Log.Error("SkillRepository.Delete: DB error", zap.Uint("skillId", skillID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ISkillRepository = (*SkillRepository)(nil)
