package migrations

import (
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSkillsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating skills table...")
	if err := db.AutoMigrate(&models.Skill{}); err != nil {
		configslog.Log.Error("Failed to migrate skills table", zap.Error(err))
		return err
	}
	return nil
}
