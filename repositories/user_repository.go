package repositories

import (
	"context"
	"errors"
	"strings"

	"kickconnect.net/configs/configsdatabase"
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserUpdate carries the fields update-user may change.
type UserUpdate struct {
	Name          string
	Email         string
	Phone         string
	Phone2        string
	Address       string
	City          string
	State         string
	Zip           string
	IsActive      int
	ResetPassword bool
	PhotoURL      string
}

// IUserRepository is persistence for users, their roles and instructor
// profiles.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, userID uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindDuplicate(ctx context.Context, candidate *models.User) (bool, error)
	Update(ctx context.Context, userID uint, upd UserUpdate) error
	UpdatePassword(ctx context.Context, userID, accountID uint, accountCode, passwordHash string) error
	Deactivate(ctx context.Context, userID uint) error
	ReplaceRoles(ctx context.Context, userID uint, roleIDs []uint) error
	ListAll(ctx context.Context) ([]models.UserSummary, error)
	ListByAccount(ctx context.Context, accountID uint) ([]models.UserSummary, error)
	ListFiltered(ctx context.Context, accountID uint, isActive int) ([]models.UserSummary, error)
	ListByRole(ctx context.Context, roleID uint) ([]models.InstructorSummary, error)
	ListByRoleAndLocation(ctx context.Context, roleID, locationID uint) ([]models.InstructorSummary, error)
	GetDetail(ctx context.Context, userID uint) (*models.UserDetail, error)
	CreateEmptyProfile(ctx context.Context, userID uint) error
	UpdateProfile(ctx context.Context, userID uint, description, skills, url string) error
	FindProfileID(ctx context.Context, userID uint) (uint, error)
	ReplaceProfileLocations(ctx context.Context, profileID, homeLocationID uint, altLocationIDs []uint) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository() IUserRepository {
	return &UserRepository{db: configsdatabase.GetDB()}
}

func NewUserRepositoryTx(tx *gorm.DB) IUserRepository {
	return &UserRepository{db: tx}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user == nil || user.AccountID == 0 {
		return errors.New("user needs an account reference")
	}
	if user.CreatedBy == "" {
		user.CreatedBy = "API add-user"
	}
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByID: DB error", zap.Uint("userId", userID), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByEmail: DB error", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// FindDuplicate reports whether a user with the same identity fields
// already exists.
func (r *UserRepository) FindDuplicate(ctx context.Context, candidate *models.User) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("name = ? AND email = ? AND phone = ? AND address = ? AND city = ? AND state = ? AND zip = ?",
			candidate.Name, candidate.Email, candidate.Phone, candidate.Address,
			candidate.City, candidate.State, candidate.Zip).
		Count(&count).Error
	if err != nil {
		configslog.Log.Error("UserRepository.FindDuplicate: DB error", zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, userID uint, upd UserUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"name":           upd.Name,
			"email":          upd.Email,
			"phone":          upd.Phone,
			"phone2":         upd.Phone2,
			"address":        upd.Address,
			"city":           upd.City,
			"state":          upd.State,
			"zip":            upd.Zip,
			"is_active":      upd.IsActive,
			"reset_password": upd.ResetPassword,
			"photo_url":      upd.PhotoURL,
			"updated_by":     "API update-user",
		})
	if result.Error != nil {
		configslog.Log.Error("UserRepository.Update: DB error", zap.Uint("userId", userID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePassword requires the user to belong to the account identified by
// both id and code; a mismatch means not found.
func (r *UserRepository) UpdatePassword(ctx context.Context, userID, accountID uint, accountCode, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("user_id = ? AND account_id = ? AND account_id = (?)",
			userID, accountID,
			r.db.Model(&models.Account{}).Select("account_id").Where("account_code = ?", accountCode)).
		Updates(map[string]any{
			"password":   passwordHash,
			"updated_by": "API update-user-password",
		})
	if result.Error != nil {
		configslog.Log.Error("UserRepository.UpdatePassword: DB error", zap.Uint("userId", userID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Deactivate(ctx context.Context, userID uint) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{"is_active": -1, "updated_by": "API deactivate-user"})
	if result.Error != nil {
		configslog.Log.Error("UserRepository.Deactivate: DB error", zap.Uint("userId", userID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceRoles swaps the whole role set: delete everything, reinsert.
func (r *UserRepository) ReplaceRoles(ctx context.Context, userID uint, roleIDs []uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Delete(&models.UserRole{}, "user_id = ?", userID).Error; err != nil {
		configslog.Log.Error("UserRepository.ReplaceRoles: delete", zap.Uint("userId", userID), zap.Error(err))
		return err
	}
	for _, roleID := range roleIDs {
		row := models.UserRole{UserID: userID, RoleID: roleID}
		if err := db.Create(&row).Error; err != nil {
			configslog.Log.Error("UserRepository.ReplaceRoles: insert",
				zap.Uint("userId", userID), zap.Uint("roleId", roleID), zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]models.UserSummary, error) {
	return r.listSummaries(ctx, r.db.WithContext(ctx).Model(&models.User{}))
}

func (r *UserRepository) ListByAccount(ctx context.Context, accountID uint) ([]models.UserSummary, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).Where("account_id = ?", accountID)
	return r.listSummaries(ctx, query)
}

func (r *UserRepository) ListFiltered(ctx context.Context, accountID uint, isActive int) ([]models.UserSummary, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).
		Where("account_id = ? AND is_active = ?", accountID, isActive)
	return r.listSummaries(ctx, query)
}

func (r *UserRepository) listSummaries(ctx context.Context, query *gorm.DB) ([]models.UserSummary, error) {
	var users []models.User
	if err := query.Preload("Roles").Preload("Profile").Find(&users).Error; err != nil {
		configslog.Log.Error("UserRepository.listSummaries: DB error", zap.Error(err))
		return nil, err
	}
	if len(users) == 0 {
		return []models.UserSummary{}, nil
	}

	accountIDs := make([]uint, 0, len(users))
	for _, u := range users {
		accountIDs = append(accountIDs, u.AccountID)
	}
	var accounts []models.Account
	if err := r.db.WithContext(ctx).Where("account_id IN ?", accountIDs).Find(&accounts).Error; err != nil {
		configslog.Log.Error("UserRepository.listSummaries: account rows", zap.Error(err))
		return nil, err
	}
	accountByID := make(map[uint]models.Account, len(accounts))
	for _, a := range accounts {
		accountByID[a.AccountID] = a
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		s := models.UserSummary{User: u}
		if a, ok := accountByID[u.AccountID]; ok {
			s.AccountName = a.AccountName
			s.AccountCode = a.AccountCode
		}
		names := make([]string, 0, len(u.Roles))
		for _, role := range u.Roles {
			// the SuperAdmin role is internal and never listed
			if role.RoleID == models.RoleSuperAdmin {
				continue
			}
			names = append(names, role.RoleName)
			s.RoleIDs = append(s.RoleIDs, role.RoleID)
		}
		s.RoleNames = strings.Join(names, ", ")
		if u.Profile != nil {
			s.ProfileDescription = u.Profile.Description
			s.ProfileSkills = u.Profile.Skills
			s.ProfileURL = u.Profile.URL
		}
		s.User.Roles = nil
		s.User.Profile = nil
		summaries = append(summaries, s)
	}
	return summaries, nil
}

func (r *UserRepository) ListByRole(ctx context.Context, roleID uint) ([]models.InstructorSummary, error) {
	return r.listByRole(ctx, roleID, 0)
}

func (r *UserRepository) ListByRoleAndLocation(ctx context.Context, roleID, locationID uint) ([]models.InstructorSummary, error) {
	return r.listByRole(ctx, roleID, locationID)
}

func (r *UserRepository) listByRole(ctx context.Context, roleID, locationID uint) ([]models.InstructorSummary, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).
		Select("users.user_id, users.name, users.email, users.phone, users.photo_url, users.is_active, profiles.skills, profiles.description, profiles.url").
		Joins("JOIN user_roles ON user_roles.user_id = users.user_id AND user_roles.role_id = ?", roleID).
		Joins("LEFT JOIN profiles ON profiles.user_id = users.user_id")
	if locationID != 0 {
		query = query.
			Joins("JOIN profile_locations ON profile_locations.profile_id = profiles.profile_id AND profile_locations.location_id = ?", locationID)
	}

	var rows []models.InstructorSummary
	if err := query.Scan(&rows).Error; err != nil {
		configslog.Log.Error("UserRepository.listByRole: DB error",
			zap.Uint("roleId", roleID), zap.Uint("locationId", locationID), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (r *UserRepository) GetDetail(ctx context.Context, userID uint) (*models.UserDetail, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Roles").Preload("Profile.Locations").
		First(&user, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.GetDetail: DB error", zap.Uint("userId", userID), zap.Error(err))
		return nil, err
	}

	detail := models.UserDetail{}
	detail.User = user
	names := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		if role.RoleID == models.RoleSuperAdmin {
			continue
		}
		names = append(names, role.RoleName)
		detail.RoleIDs = append(detail.RoleIDs, role.RoleID)
	}
	detail.RoleNames = strings.Join(names, ", ")
	if user.Profile != nil {
		profileID := user.Profile.ProfileID
		detail.ProfileID = &profileID
		detail.ProfileDescription = user.Profile.Description
		detail.ProfileSkills = user.Profile.Skills
		detail.ProfileURL = user.Profile.URL
		for _, pl := range user.Profile.Locations {
			if pl.IsHome {
				locID := pl.LocationID
				detail.PrimaryLocation = &locID
			} else {
				detail.AltLocations = append(detail.AltLocations, pl.LocationID)
			}
		}
	}
	detail.User.Roles = nil
	detail.User.Profile = nil
	return &detail, nil
}

func (r *UserRepository) CreateEmptyProfile(ctx context.Context, userID uint) error {
	profile := models.Profile{UserID: userID}
	profile.CreatedBy = "API add-user"
	return r.db.WithContext(ctx).Create(&profile).Error
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID uint, description, skills, url string) error {
	result := r.db.WithContext(ctx).Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"description": description,
			"skills":      skills,
			"url":         url,
			"updated_by":  "API update-profile",
		})
	if result.Error != nil {
		configslog.Log.Error("UserRepository.UpdateProfile: DB error", zap.Uint("userId", userID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) FindProfileID(ctx context.Context, userID uint) (uint, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Select("profile_id").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindProfileID: DB error", zap.Uint("userId", userID), zap.Error(err))
		return 0, err
	}
	return profile.ProfileID, nil
}

// ReplaceProfileLocations swaps the instructor's location links: one home
// row, any number of alternates.
func (r *UserRepository) ReplaceProfileLocations(ctx context.Context, profileID, homeLocationID uint, altLocationIDs []uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Delete(&models.ProfileLocation{}, "profile_id = ?", profileID).Error; err != nil {
		configslog.Log.Error("UserRepository.ReplaceProfileLocations: delete",
			zap.Uint("profileId", profileID), zap.Error(err))
		return err
	}
	home := models.ProfileLocation{ProfileID: profileID, LocationID: homeLocationID, IsHome: true}
	if err := db.Create(&home).Error; err != nil {
		return err
	}
	for _, locationID := range altLocationIDs {
		alt := models.ProfileLocation{ProfileID: profileID, LocationID: locationID}
		if err := db.Create(&alt).Error; err != nil {
			return err
		}
	}
	return nil
}

var _ IUserRepository = (*UserRepository)(nil)
