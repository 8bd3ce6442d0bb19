package migrations

import (
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateMembershipTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating members, member_accounts, membership_plans & membership_attendances tables...")
	err := db.AutoMigrate(
		&models.Member{},
		&models.MemberAccount{},
		&models.MembershipPlan{},
		&models.MembershipAttendance{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate membership tables", zap.Error(err))
		return err
	}
	return nil
}
