package migrations

import (
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateRolesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating roles table...")
	if err := db.AutoMigrate(&models.Role{}); err != nil {
		configslog.Log.Error("Failed to migrate roles table", zap.Error(err))
		return err
	}
	return nil
}
