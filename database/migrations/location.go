package migrations

import (
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateLocationsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating locations table...")
	if err := db.AutoMigrate(&models.Location{}); err != nil {
		configslog.Log.Error("Failed to migrate locations table", zap.Error(err))
		return err
	}
	return nil
}
