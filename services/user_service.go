package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"
	"kickconnect.net/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceError string

func (e UserServiceError) Error() string { return string(e) }

const (
	ErrUserNotFound       UserServiceError = "user not found"
	ErrUserDuplicate      UserServiceError = "a user with these details already exists"
	ErrUserInvalidInput   UserServiceError = "name, email and at least one role are required"
	ErrUserCreationFailed UserServiceError = "user could not be created"
	ErrUserUpdateFailed   UserServiceError = "user could not be updated"
	ErrUserPasswordFailed UserServiceError = "password could not be updated"
	ErrProfileNotFound    UserServiceError = "instructor profile not found"
	ErrProfileUpdateFail  UserServiceError = "instructor profile could not be updated"
)

// UserInput is the payload for creating or updating a staff login.
type UserInput struct {
	Name     string
	Email    string
	Phone    string
	Phone2   string
	Address  string
	City     string
	State    string
	Zip      string
	Password string // create only
	PhotoURL string
	IsActive int
	RoleIDs  []uint
}

// ProfileInput is the payload for the instructor profile editor.
type ProfileInput struct {
	Description     string
	Skills          string
	URL             string
	PrimaryLocation uint
	AltLocations    []uint
}

// IUserService manages staff logins, their roles and instructor profiles.
type IUserService interface {
	CreateUser(ctx context.Context, accountID uint, input UserInput) (*models.User, error)
	GetUser(ctx context.Context, userID uint) (*models.UserDetail, error)
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	ListAccountUsers(ctx context.Context, accountCode string) ([]models.UserSummary, error)
	ListFilteredUsers(ctx context.Context, accountID uint, isActive int) ([]models.UserSummary, error)
	ListInstructors(ctx context.Context) ([]models.InstructorSummary, error)
	ListLocationInstructors(ctx context.Context, locationID uint) ([]models.InstructorSummary, error)
	UpdateUser(ctx context.Context, userID uint, input UserInput) error
	DeactivateUser(ctx context.Context, userID uint) error
	ChangePassword(ctx context.Context, userID, accountID uint, accountCode, newPassword string) error
	UpdateProfile(ctx context.Context, userID uint, input ProfileInput) error
}

type UserService struct {
	repo        repositories.IUserRepository
	accountRepo repositories.IAccountRepository
	uow         repositories.IUnitOfWork
	notifier    Notifier
}

func NewUserService() IUserService {
	return &UserService{
		repo:        repositories.NewUserRepository(),
		accountRepo: repositories.NewAccountRepository(),
		uow:         repositories.NewUnitOfWork(),
		notifier:    NewLogNotifier(),
	}
}

func hasInstructorRole(roleIDs []uint) bool {
	for _, id := range roleIDs {
		if id == models.RoleInstructor {
			return true
		}
	}
	return false
}

// CreateUser adds a staff login with its role set, rejecting exact
// duplicates. Gaining the Instructor role creates an empty profile row in
// the same transaction.
func (s *UserService) CreateUser(ctx context.Context, accountID uint, input UserInput) (*models.User, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || len(input.RoleIDs) == 0 {
		return nil, ErrUserInvalidInput
	}

	user := &models.User{
		AccountID:     accountID,
		Name:          strings.TrimSpace(input.Name),
		Email:         strings.TrimSpace(input.Email),
		Phone:         input.Phone,
		Phone2:        input.Phone2,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		Zip:           input.Zip,
		PhotoURL:      input.PhotoURL,
		IsActive:      1,
		ResetPassword: true,
	}

	duplicate, err := s.repo.FindDuplicate(ctx, user)
	if err != nil {
		return nil, ErrUserCreationFailed
	}
	if duplicate {
		return nil, ErrUserDuplicate
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("UserService.CreateUser: password hashing failed", zap.Error(err))
		return nil, ErrUserCreationFailed
	}
	user.Password = string(hashed)

	err = s.uow.InTx(ctx, func(r repositories.Repos) error {
		if err := r.Users.Create(ctx, user); err != nil {
			return err
		}
		if err := r.Users.ReplaceRoles(ctx, user.UserID, input.RoleIDs); err != nil {
			return err
		}
		if hasInstructorRole(input.RoleIDs) {
			return r.Users.CreateEmptyProfile(ctx, user.UserID)
		}
		return nil
	})
	if err != nil {
		configslog.Log.Error("UserService.CreateUser failed", zap.Uint("accountId", accountID), zap.Error(err))
		return nil, ErrUserCreationFailed
	}

	configslog.SLog.Infof("User created: id=%d account=%d", user.UserID, accountID)

	go func(email, name string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.notifier.SendPasswordReset(ctx, email, name); err != nil {
			configslog.Log.Warn("credentials notification failed", zap.String("email", email), zap.Error(err))
		}
	}(user.Email, user.Name)

	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, userID uint) (*models.UserDetail, error) {
	detail, err := s.repo.GetDetail(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return detail, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	return s.repo.ListAll(ctx)
}

func (s *UserService) ListAccountUsers(ctx context.Context, accountCode string) ([]models.UserSummary, error) {
	account, err := s.accountRepo.FindByCode(ctx, accountCode)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return s.repo.ListByAccount(ctx, account.AccountID)
}

func (s *UserService) ListFilteredUsers(ctx context.Context, accountID uint, isActive int) ([]models.UserSummary, error) {
	return s.repo.ListFiltered(ctx, accountID, isActive)
}

func (s *UserService) ListInstructors(ctx context.Context) ([]models.InstructorSummary, error) {
	return s.repo.ListByRole(ctx, models.RoleInstructor)
}

func (s *UserService) ListLocationInstructors(ctx context.Context, locationID uint) ([]models.InstructorSummary, error) {
	return s.repo.ListByRoleAndLocation(ctx, models.RoleInstructor, locationID)
}

// UpdateUser rewrites the login fields and replaces the whole role set.
// A user who gains the Instructor role and has no profile yet gets one.
func (s *UserService) UpdateUser(ctx context.Context, userID uint, input UserInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || len(input.RoleIDs) == 0 {
		return ErrUserInvalidInput
	}

	err := s.uow.InTx(ctx, func(r repositories.Repos) error {
		upd := repositories.UserUpdate{
			Name:     strings.TrimSpace(input.Name),
			Email:    strings.TrimSpace(input.Email),
			Phone:    input.Phone,
			Phone2:   input.Phone2,
			Address:  input.Address,
			City:     input.City,
			State:    input.State,
			Zip:      input.Zip,
			IsActive: input.IsActive,
			PhotoURL: input.PhotoURL,
		}
		if err := r.Users.Update(ctx, userID, upd); err != nil {
			return err
		}
		if err := r.Users.ReplaceRoles(ctx, userID, input.RoleIDs); err != nil {
			return err
		}
		if hasInstructorRole(input.RoleIDs) {
			if _, err := r.Users.FindProfileID(ctx, userID); errors.Is(err, repositories.ErrNotFound) {
				return r.Users.CreateEmptyProfile(ctx, userID)
			} else if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		configslog.Log.Error("UserService.UpdateUser failed", zap.Uint("userId", userID), zap.Error(err))
		return ErrUserUpdateFailed
	}
	return nil
}

func (s *UserService) DeactivateUser(ctx context.Context, userID uint) error {
	if err := s.repo.Deactivate(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		configslog.Log.Error("UserService.DeactivateUser failed", zap.Uint("userId", userID), zap.Error(err))
		return ErrUserUpdateFailed
	}
	return nil
}

// ChangePassword rehashes and stores the password. The account id and code
// must both match the user's account; a mismatch reads as not found so the
// endpoint leaks nothing about which part was wrong.
func (s *UserService) ChangePassword(ctx context.Context, userID, accountID uint, accountCode, newPassword string) error {
	if newPassword == "" {
		return ErrUserPasswordFailed
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("UserService.ChangePassword: hashing failed", zap.Error(err))
		return ErrUserPasswordFailed
	}
	if err := s.repo.UpdatePassword(ctx, userID, accountID, accountCode, string(hashed)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		configslog.Log.Error("UserService.ChangePassword failed", zap.Uint("userId", userID), zap.Error(err))
		return ErrUserPasswordFailed
	}
	return nil
}

// UpdateProfile rewrites the instructor profile and replaces its location
// links in one transaction.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input ProfileInput) error {
	err := s.uow.InTx(ctx, func(r repositories.Repos) error {
		if err := r.Users.UpdateProfile(ctx, userID, input.Description, input.Skills, input.URL); err != nil {
			return err
		}
		if input.PrimaryLocation == 0 {
			return nil
		}
		profileID, err := r.Users.FindProfileID(ctx, userID)
		if err != nil {
			return err
		}
		return r.Users.ReplaceProfileLocations(ctx, profileID, input.PrimaryLocation, input.AltLocations)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProfileNotFound
		}
		configslog.Log.Error("UserService.UpdateProfile failed", zap.Uint("userId", userID), zap.Error(err))
		return ErrProfileUpdateFail
	}
	return nil
}

var _ IUserService = (*UserService)(nil)
