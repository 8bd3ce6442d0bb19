package repositories

import (
	"context"
	"errors"

	"kickconnect.net/configs/configsdatabase"
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"
	"kickconnect.net/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IAccountRepository is persistence for accounts.
type IAccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id uint) (*models.Account, error)
	FindByCode(ctx context.Context, code string) (*models.Account, error)
	ListAll(ctx context.Context) ([]models.Account, error)
	ListPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Account, int64, error)
}

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository() IAccountRepository {
	return &AccountRepository{db: configsdatabase.GetDB()}
}

func NewAccountRepositoryTx(tx *gorm.DB) IAccountRepository {
	return &AccountRepository{db: tx}
}

func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	if account == nil || account.AccountCode == "" {
		return errors.New("account needs an account code")
	}
	account.CreatedBy = "API add-account"
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *AccountRepository) FindByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).First(&account, "account_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AccountRepository.FindByID: DB error", zap.Uint("accountId", id), zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindByCode(ctx context.Context, code string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).First(&account, "account_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AccountRepository.FindByCode: DB error", zap.String("accountCode", code), zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) ListAll(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.WithContext(ctx).Find(&accounts).Error
	return accounts, err
}

// ListPaginated applies the name/status filters, counts the filtered set and
// returns one page of it.
func (r *AccountRepository) ListPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Account, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Account{})
	if params.Name != "" {
		query = query.Where("account_name LIKE ?", "%"+params.Name+"%")
	}
	if params.Status != "" {
		query = query.Where("is_active = ?", params.Status == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("AccountRepository.ListPaginated: count failed", zap.Error(err))
		return nil, 0, err
	}

	allowedSortColumns := map[string]string{
		"id":         "account_id",
		"name":       "account_name",
		"created_at": "created_at",
	}
	orderClause := "account_id asc"
	if col, ok := allowedSortColumns[params.SortBy]; ok {
		orderClause = col + " " + params.OrderBy
	}

	var accounts []models.Account
	err := query.Order(orderClause).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&accounts).Error
	if err != nil {
		configslog.Log.Error("AccountRepository.ListPaginated: query failed", zap.Error(err))
		return nil, 0, err
	}
	return accounts, total, nil
}

var _ IAccountRepository = (*AccountRepository)(nil)
