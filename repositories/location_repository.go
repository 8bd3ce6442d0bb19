package repositories

import (
	"context"
	"errors"

	"kickconnect.net/configs/configsdatabase"
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ILocationRepository is persistence for account locations.
type ILocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	FindByID(ctx context.Context, id uint) (*models.Location, error)
	ListAll(ctx context.Context) ([]models.Location, error)
	ListActive(ctx context.Context) ([]models.Location, error)
	ListInactive(ctx context.Context) ([]models.Location, error)
	ListActiveByAccount(ctx context.Context, accountID uint) ([]models.Location, error)
	Update(ctx context.Context, id uint, location *models.Location) error
}

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository() ILocationRepository {
	return &LocationRepository{db: configsdatabase.GetDB()}
}

func NewLocationRepositoryTx(tx *gorm.DB) ILocationRepository {
	return &LocationRepository{db: tx}
}

func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	if location == nil || location.AccountID == 0 {
		return errors.New("location needs an account reference")
	}
	location.CreatedBy = "API add-location"
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *LocationRepository) FindByID(ctx context.Context, id uint) (*models.Location, error) {
	var location models.Location
	err := r.db.WithContext(ctx).First(&location, "location_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("LocationRepository.FindByID: DB error", zap.Uint("locationId", id), zap.Error(err))
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepository) ListAll(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	err := r.db.WithContext(ctx).Find(&locations).Error
	return locations, err
}

func (r *LocationRepository) ListActive(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&locations).Error
	return locations, err
}

func (r *LocationRepository) ListInactive(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	err := r.db.WithContext(ctx).Where("is_active = ?", false).Find(&locations).Error
	return locations, err
}

func (r *LocationRepository) ListActiveByAccount(ctx context.Context, accountID uint) ([]models.Location, error) {
	var locations []models.Location
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND is_active = ?", accountID, true).
		Find(&locations).Error
	if err != nil {
		configslog.Log.Error("LocationRepository.ListActiveByAccount: DB error",
			zap.Uint("accountId", accountID), zap.Error(err))
	}
	return locations, err
}

func (r *LocationRepository) Update(ctx context.Context, id uint, location *models.Location) error {
	result := r.db.WithContext(ctx).Model(&models.Location{}).
		Where("location_id = ?", id).
		Updates(map[string]any{
			"location_name":    location.LocationName,
			"location_email":   location.LocationEmail,
			"location_phone":   location.LocationPhone,
			"location_address": location.LocationAddress,
			"location_city":    location.LocationCity,
			"location_state":   location.LocationState,
			"location_zip":     location.LocationZip,
			"is_active":        location.IsActive,
			"updated_by":       "API update-location",
		})
	if result.Error != nil {
		configslog.Log.Error("LocationRepository.Update: DB error", zap.Uint("locationId", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ILocationRepository = (*LocationRepository)(nil)
