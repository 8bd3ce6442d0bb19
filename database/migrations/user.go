package migrations

import (
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateUserTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating users, user_roles, profiles & profile_locations tables...")
	err := db.AutoMigrate(&models.User{}, &models.UserRole{}, &models.Profile{}, &models.ProfileLocation{})
	if err != nil {
		configslog.Log.Error("Failed to migrate user tables", zap.Error(err))
		return err
	}
	return nil
}
