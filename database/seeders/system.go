package seeders

import (
	"errors"

	"kickconnect.net/configs"
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSystemAccount creates the platform operator account and its
// SuperAdmin login if they are missing. The login password comes from
// SYSTEM_PASSWORD; seeding fails rather than creating a login with an
// empty one.
func SeedSystemAccount(db *gorm.DB) error {
	email := configs.GetEnv("SYSTEM_EMAIL", "admin@kickconnect.net")

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Checking system login failed", zap.Error(result.Error))
		return result.Error
	}

	password := configs.GetEnv("SYSTEM_PASSWORD", "")
	if password == "" {
		return errors.New("SYSTEM_PASSWORD must be set to seed the system login")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account := models.Account{
		AccountCode:  uuid.NewString(),
		AccountName:  "kickConnect",
		AccountEmail: email,
		IsSuperAdmin: true,
	}
	account.CreatedBy = "seeder"
	if err := db.Create(&account).Error; err != nil {
		configslog.Log.Error("Seeding system account failed", zap.Error(err))
		return err
	}

	user := models.User{
		AccountID: account.AccountID,
		Name:      "System Administrator",
		Email:     email,
		Password:  string(hashed),
		IsActive:  1,
	}
	user.CreatedBy = "seeder"
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Seeding system login failed", zap.Error(err))
		return err
	}
	if err := db.Create(&models.UserRole{UserID: user.UserID, RoleID: models.RoleSuperAdmin}).Error; err != nil {
		configslog.Log.Error("Seeding system role failed", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Seeded system account (id=%d) and login (id=%d)", account.AccountID, user.UserID)
	return nil
}
