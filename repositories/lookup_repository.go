package repositories

import (
	"context"

	"kickconnect.net/configs/configsdatabase"
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ILookupRepository serves the seeded reference tables behind dropdowns
// and address autofill.
type ILookupRepository interface {
	ListDurations(ctx context.Context) ([]models.Duration, error)
	ListReservationCounts(ctx context.Context) ([]models.ReservationCount, error)
	ListDays(ctx context.Context) ([]models.Day, error)
	FindZip(ctx context.Context, zip string) (*models.ZipCode, error)
}

type LookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository() ILookupRepository {
	return &LookupRepository{db: configsdatabase.GetDB()}
}

func NewLookupRepositoryTx(tx *gorm.DB) ILookupRepository {
	return &LookupRepository{db: tx}
}

func (r *LookupRepository) ListDurations(ctx context.Context) ([]models.Duration, error) {
	var durations []models.Duration
	err := r.db.WithContext(ctx).Order("duration_value ASC").Find(&durations).Error
	if err != nil {
		configslog.Log.Error("LookupRepository.ListDurations: DB error", zap.Error(err))
		return nil, err
	}
	return durations, nil
}

func (r *LookupRepository) ListReservationCounts(ctx context.Context) ([]models.ReservationCount, error) {
	var counts []models.ReservationCount
	err := r.db.WithContext(ctx).Order("reservation_count_value ASC").Find(&counts).Error
	if err != nil {
		configslog.Log.Error("LookupRepository.ListReservationCounts: DB error", zap.Error(err))
		return nil, err
	}
	return counts, nil
}

func (r *LookupRepository) ListDays(ctx context.Context) ([]models.Day, error) {
	var days []models.Day
	err := r.db.WithContext(ctx).Order("day_number ASC").Find(&days).Error
	if err != nil {
		configslog.Log.Error("LookupRepository.ListDays: DB error", zap.Error(err))
		return nil, err
	}
	return days, nil
}

// FindZip returns the first city/state row for a zip, or ErrNotFound when
// the zip is unknown.
func (r *LookupRepository) FindZip(ctx context.Context, zip string) (*models.ZipCode, error) {
	var row models.ZipCode
	err := r.db.WithContext(ctx).Where("zip = ?", zip).Limit(1).Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		configslog.Log.Error("LookupRepository.FindZip: DB error", zap.String("zip", zip), zap.Error(err))
		return nil, err
	}
	return &row, nil
}

var _ ILookupRepository = (*LookupRepository)(nil)
