package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"
	"kickconnect.net/pkg/queryparams"
	"kickconnect.net/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AccountServiceError string

func (e AccountServiceError) Error() string { return string(e) }

const (
	ErrAccountNotFound       AccountServiceError = "account not found"
	ErrAccountNameRequired   AccountServiceError = "account name is required"
	ErrAccountOwnerRequired  AccountServiceError = "owner name, email and password are required"
	ErrAccountCreationFailed AccountServiceError = "account could not be created"
)

// SignupInput is the provisioning payload: the business plus its first
// owner login.
type SignupInput struct {
	AccountName    string
	AccountPhone   string
	AccountEmail   string
	AccountAddress string
	AccountCity    string
	AccountState   string
	AccountZip     string

	OwnerName     string
	OwnerEmail    string
	OwnerPhone    string
	OwnerPassword string
}

// IAccountService provisions and reads tenant accounts.
type IAccountService interface {
	Signup(ctx context.Context, input SignupInput) (*models.Account, error)
	GetAccount(ctx context.Context, accountID uint) (*models.Account, error)
	GetAccountByCode(ctx context.Context, code string) (*models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	ListAccountsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
}

type AccountService struct {
	repo     repositories.IAccountRepository
	uow      repositories.IUnitOfWork
	notifier Notifier
}

func NewAccountService() IAccountService {
	return &AccountService{
		repo:     repositories.NewAccountRepository(),
		uow:      repositories.NewUnitOfWork(),
		notifier: NewLogNotifier(),
	}
}

// Signup provisions the account, its opaque code and the owner login in
// one transaction, then fires the welcome notification without waiting on
// it.
func (s *AccountService) Signup(ctx context.Context, input SignupInput) (*models.Account, error) {
	if strings.TrimSpace(input.AccountName) == "" {
		return nil, ErrAccountNameRequired
	}
	if strings.TrimSpace(input.OwnerName) == "" ||
		strings.TrimSpace(input.OwnerEmail) == "" ||
		input.OwnerPassword == "" {
		return nil, ErrAccountOwnerRequired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("AccountService.Signup: password hashing failed", zap.Error(err))
		return nil, ErrAccountCreationFailed
	}

	account := &models.Account{
		AccountCode:    uuid.NewString(),
		AccountName:    strings.TrimSpace(input.AccountName),
		AccountPhone:   input.AccountPhone,
		AccountEmail:   input.AccountEmail,
		AccountAddress: input.AccountAddress,
		AccountCity:    input.AccountCity,
		AccountState:   input.AccountState,
		AccountZip:     input.AccountZip,
	}
	owner := &models.User{
		Name:     strings.TrimSpace(input.OwnerName),
		Email:    strings.TrimSpace(input.OwnerEmail),
		Phone:    input.OwnerPhone,
		Password: string(hashed),
		IsActive: 1,
	}

	err = s.uow.InTx(ctx, func(r repositories.Repos) error {
		if err := r.Accounts.Create(ctx, account); err != nil {
			return err
		}
		owner.AccountID = account.AccountID
		if err := r.Users.Create(ctx, owner); err != nil {
			return err
		}
		return r.Users.ReplaceRoles(ctx, owner.UserID, []uint{models.RoleOwner, models.RoleAdmin})
	})
	if err != nil {
		configslog.Log.Error("AccountService.Signup failed", zap.String("accountName", input.AccountName), zap.Error(err))
		return nil, ErrAccountCreationFailed
	}

	configslog.SLog.Infof("Account provisioned: id=%d owner=%d", account.AccountID, owner.UserID)

	// Best-effort: signup never fails over a notification.
	go func(email, name, code string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.notifier.SendWelcome(ctx, email, name, code); err != nil {
			configslog.Log.Warn("welcome notification failed", zap.String("email", email), zap.Error(err))
		}
	}(owner.Email, owner.Name, account.AccountCode)

	return account, nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountID uint) (*models.Account, error) {
	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (s *AccountService) GetAccountByCode(ctx context.Context, code string) (*models.Account, error) {
	account, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return s.repo.ListAll(ctx)
}

// ListAccountsPaginated pages through every account for the admin listing.
func (s *AccountService) ListAccountsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()

	accounts, total, err := s.repo.ListPaginated(ctx, params)
	if err != nil {
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: accounts,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  queryparams.CalculateTotalPages(total, params.PerPage),
		},
	}, nil
}

var _ IAccountService = (*AccountService)(nil)
