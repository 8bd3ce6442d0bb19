package migrations

import (
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAccountsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating accounts table...")
	if err := db.AutoMigrate(&models.Account{}); err != nil {
		configslog.Log.Error("Failed to migrate accounts table", zap.Error(err))
		return err
	}
	return nil
}
