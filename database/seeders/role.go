package seeders

import (
	"errors"

	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedRoles inserts the well-known roles with their stable ids. Existing
// rows are left untouched so tenant edits survive reseeding.
func SeedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{RoleID: models.RoleSuperAdmin, RoleName: "SuperAdmin", RoleDescription: "Platform operator", RoleOrderID: 1},
		{RoleID: models.RoleOwner, RoleName: "Owner", RoleDescription: "Business owner", RoleOrderID: 2},
		{RoleID: models.RoleAdmin, RoleName: "Admin", RoleDescription: "Account administrator", RoleOrderID: 3},
		{RoleID: models.RoleLocalAdmin, RoleName: "LocalAdmin", RoleDescription: "Single-location administrator", RoleOrderID: 4},
		{RoleID: models.RoleInstructor, RoleName: "Instructor", RoleDescription: "Teaches classes", RoleOrderID: 5},
		{RoleID: models.RoleStaff, RoleName: "Staff", RoleDescription: "General staff", RoleOrderID: 6},
	}

	for _, role := range roles {
		var existing models.Role
		result := db.Where("role_id = ?", role.RoleID).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Checking role seed row failed", zap.String("role", role.RoleName), zap.Error(result.Error))
			return result.Error
		}
		role.CreatedBy = "seeder"
		if err := db.Create(&role).Error; err != nil {
			configslog.Log.Error("Seeding role failed", zap.String("role", role.RoleName), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Seeded role %q (id=%d)", role.RoleName, role.RoleID)
	}
	return nil
}
