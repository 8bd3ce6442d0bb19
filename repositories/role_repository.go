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

// IRoleRepository is persistence for the role catalogue.
type IRoleRepository interface {
	ListAll(ctx context.Context) ([]models.Role, error)
	ListAssignable(ctx context.Context) ([]models.Role, error)
	FindByID(ctx context.Context, roleID uint) (*models.Role, error)
	Create(ctx context.Context, role *models.Role) error
	Update(ctx context.Context, roleID uint, name, description string) error
	UpdateOrder(ctx context.Context, roleID uint, orderID int) error
	MaxOrderID(ctx context.Context) (int, error)
	ShiftOrderRange(ctx context.Context, lo, hi, delta int) error
	ShiftOrdersFrom(ctx context.Context, orderID int) error
	Delete(ctx context.Context, roleID uint) error
}

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository() IRoleRepository {
	return &RoleRepository{db: configsdatabase.GetDB()}
}

func NewRoleRepositoryTx(tx *gorm.DB) IRoleRepository {
	return &RoleRepository{db: tx}
}

func (r *RoleRepository) ListAll(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.WithContext(ctx).Order("role_order_id ASC").Find(&roles).Error
	if err != nil {
		configslog.Log.Error("RoleRepository.ListAll: DB error", zap.Error(err))
		return nil, err
	}
	return roles, nil
}

// ListAssignable returns every role a tenant may hand out, which excludes
// the internal SuperAdmin role.
func (r *RoleRepository) ListAssignable(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.WithContext(ctx).
		Where("role_id <> ?", models.RoleSuperAdmin).
		Order("role_order_id ASC").
		Find(&roles).Error
	if err != nil {
		configslog.Log.Error("RoleRepository.ListAssignable: DB error", zap.Error(err))
		return nil, err
	}
	return roles, nil
}

func (r *RoleRepository) FindByID(ctx context.Context, roleID uint) (*models.Role, error) {
	var role models.Role
	err := r.db.WithContext(ctx).First(&role, "role_id = ?", roleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RoleRepository.FindByID: DB error", zap.Uint("roleId", roleID), zap.Error(err))
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepository) Create(ctx context.Context, role *models.Role) error {
	if role.CreatedBy == "" {
		role.CreatedBy = "API add-role"
	}
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *RoleRepository) Update(ctx context.Context, roleID uint, name, description string) error {
	result := r.db.WithContext(ctx).Model(&models.Role{}).
		Where("role_id = ?", roleID).
		Updates(map[string]any{
			"role_name":        name,
			"role_description": description,
			"updated_by":       "API update-role",
		})
	if result.Error != nil {
		configslog.Log.Error("RoleRepository.Update: DB error", zap.Uint("roleId", roleID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RoleRepository) UpdateOrder(ctx context.Context, roleID uint, orderID int) error {
	result := r.db.WithContext(ctx).Model(&models.Role{}).
		Where("role_id = ?", roleID).
		Updates(map[string]any{"role_order_id": orderID, "updated_by": "API reorder-role"})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RoleRepository) MaxOrderID(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&models.Role{}).
		Select("COALESCE(MAX(role_order_id), 0)").Scan(&max).Error
	if err != nil {
		configslog.Log.Error("RoleRepository.MaxOrderID: DB error", zap.Error(err))
		return 0, err
	}
	return max, nil
}

// ShiftOrderRange moves every role whose order falls within [lo, hi] by
// delta. Used by the reorder transaction to open or close the slot the
// moved role lands in.
func (r *RoleRepository) ShiftOrderRange(ctx context.Context, lo, hi, delta int) error {
	err := r.db.WithContext(ctx).Model(&models.Role{}).
		Where("role_order_id BETWEEN ? AND ?", lo, hi).
		UpdateColumn("role_order_id", gorm.Expr("role_order_id + ?", delta)).Error
	if err != nil {
		configslog.Log.Error("RoleRepository.ShiftOrderRange: DB error",
			zap.Int("lo", lo), zap.Int("hi", hi), zap.Int("delta", delta), zap.Error(err))
	}
	return err
}

// ShiftOrdersFrom closes the gap left by a removed role: every role ordered
// after the given position moves up by one.
func (r *RoleRepository) ShiftOrdersFrom(ctx context.Context, orderID int) error {
	err := r.db.WithContext(ctx).Model(&models.Role{}).
		Where("role_order_id > ?", orderID).
		UpdateColumn("role_order_id", gorm.Expr("role_order_id - 1")).Error
	if err != nil {
		configslog.Log.Error("RoleRepository.ShiftOrdersFrom: DB error", zap.Int("orderId", orderID), zap.Error(err))
	}
	return err
}

func (r *RoleRepository) Delete(ctx context.Context, roleID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Role{}, "role_id = ?", roleID)
	if result.Error != nil {
		configslog.Log.Error("RoleRepository.Delete: DB error", zap.Uint("roleId", roleID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IRoleRepository = (*RoleRepository)(nil)
