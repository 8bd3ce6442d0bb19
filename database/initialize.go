package database

import (
	"kickconnect.net/configs/configslog"
	"kickconnect.net/database/migrations"
	"kickconnect.net/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs the requested migration and seeding steps inside one
// transaction: a half-migrated schema never commits.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Neither -migrate nor -seed given, nothing to do.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Could not open the initialization transaction", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Database initialization panicked", zap.Any("panic", r))
		}
	}()

	if migrate {
		configslog.SLog.Info("Running migrations...")
		if err := RunMigrationsInOrder(tx); err != nil {
			tx.Rollback()
			configslog.Log.Error("Migration failed, rolling back", zap.Error(err))
			return
		}
	}

	if seed {
		configslog.SLog.Info("Running seeders...")
		if err := RunSeeders(tx); err != nil {
			tx.Rollback()
			configslog.Log.Error("Seeding failed, rolling back", zap.Error(err))
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit failed", zap.Error(err))
		return
	}
	configslog.SLog.Info("Database initialization finished")
}

// RunMigrationsInOrder migrates tables parents-first so foreign keys
// always have a target.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []func(*gorm.DB) error{
		migrations.MigrateAccountsTable,
		migrations.MigrateRolesTable,
		migrations.MigrateLocationsTable,
		migrations.MigrateEventsTable,
		migrations.MigrateUserTables,
		migrations.MigrateScheduleTables,
		migrations.MigrateSkillsTable,
		migrations.MigrateMembershipTables,
		migrations.MigrateLookupTables,
	}
	for _, step := range steps {
		if err := step(db); err != nil {
			return err
		}
	}
	configslog.SLog.Info("All migrations ran successfully.")
	return nil
}

// RunSeeders fills the reference tables and the system login. Every
// seeder is idempotent.
func RunSeeders(db *gorm.DB) error {
	steps := []func(*gorm.DB) error{
		seeders.SeedRoles,
		seeders.SeedDurations,
		seeders.SeedReservationCounts,
		seeders.SeedDays,
		seeders.SeedSystemAccount,
	}
	for _, step := range steps {
		if err := step(db); err != nil {
			return err
		}
	}
	configslog.SLog.Info("All seeders ran successfully.")
	return nil
}
