package migrations

import (
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateScheduleTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating schedule_mains, schedule_locations & schedule_profiles tables...")
	err := db.AutoMigrate(&models.ScheduleMain{}, &models.ScheduleLocation{}, &models.ScheduleProfile{})
	if err != nil {
		configslog.Log.Error("Failed to migrate schedule tables", zap.Error(err))
		return err
	}
	return nil
}
