package migrations

import (
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateLookupTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating durations, reservation_counts, days & zip_codes tables...")
	err := db.AutoMigrate(
		&models.Duration{},
		&models.ReservationCount{},
		&models.Day{},
		&models.ZipCode{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate lookup tables", zap.Error(err))
		return err
	}
	return nil
}
