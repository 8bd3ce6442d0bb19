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

// IEventRepository is persistence for account events. Events are only ever
// soft-deleted through Deactivate.
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, accountID, eventID uint) (*models.Event, error)
	ListByAccount(ctx context.Context, accountID uint) ([]models.Event, error)
	ListActiveByAccount(ctx context.Context, accountID uint) ([]models.Event, error)
	Update(ctx context.Context, eventID uint, event *models.Event) error
	Deactivate(ctx context.Context, accountID, eventID uint) error
}

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository() IEventRepository {
	return &EventRepository{db: configsdatabase.GetDB()}
}

func NewEventRepositoryTx(tx *gorm.DB) IEventRepository {
	return &EventRepository{db: tx}
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event == nil || event.AccountID == 0 {
		return errors.New("event needs an account reference")
	}
	event.CreatedBy = "API add-event"
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *EventRepository) FindByID(ctx context.Context, accountID, eventID uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND event_id = ?", accountID, eventID).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EventRepository.FindByID: DB error",
			zap.Uint("accountId", accountID), zap.Uint("eventId", eventID), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) ListByAccount(ctx context.Context, accountID uint) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Find(&events).Error
	return events, err
}

func (r *EventRepository) ListActiveByAccount(ctx context.Context, accountID uint) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND is_active = ?", accountID, true).
		Find(&events).Error
	return events, err
}

func (r *EventRepository) Update(ctx context.Context, eventID uint, event *models.Event) error {
	result := r.db.WithContext(ctx).Model(&models.Event{}).
		Where("event_id = ?", eventID).
		Updates(map[string]any{
			"event_name":        event.EventName,
			"event_description": event.EventDescription,
			"is_reservation":    event.IsReservation,
			"reservation_count": event.ReservationCount,
			"is_cost_to_attend": event.IsCostToAttend,
			"cost_to_attend":    event.CostToAttend,
			"is_active":         event.IsActive,
			"updated_by":        "API update-event",
		})
	if result.Error != nil {
		configslog.Log.Error("EventRepository.Update: DB error", zap.Uint("eventId", eventID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepository) Deactivate(ctx context.Context, accountID, eventID uint) error {
	result := r.db.WithContext(ctx).Model(&models.Event{}).
		Where("account_id = ? AND event_id = ?", accountID, eventID).
		Updates(map[string]any{
			"is_active":  false,
			"updated_by": "API deactivate-event",
		})
	if result.Error != nil {
		configslog.Log.Error("EventRepository.Deactivate: DB error",
			zap.Uint("accountId", accountID), zap.Uint("eventId", eventID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IEventRepository = (*EventRepository)(nil)
