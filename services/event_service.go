package services

import (
	"context"
	"errors"
	"strings"

	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"
	"kickconnect.net/repositories"

	"go.uber.org/zap"
)

type EventServiceError string

func (e EventServiceError) Error() string { return string(e) }

const (
	ErrEventNotFound       EventServiceError = "event not found"
	ErrEventNameRequired   EventServiceError = "event name is required"
	ErrEventCreationFailed EventServiceError = "event could not be created"
	ErrEventUpdateFailed   EventServiceError = "event could not be updated"
)

// EventInput is the payload for creating or updating an event.
type EventInput struct {
	EventName        string
	EventDescription string
	IsReservation    bool
	ReservationCount int
	IsCostToAttend   bool
	CostToAttend     float64
	IsActive         bool
}

// IEventService manages the classes an account offers.
type IEventService interface {
	CreateEvent(ctx context.Context, accountID uint, input EventInput) (*models.Event, error)
	GetEvent(ctx context.Context, accountID, eventID uint) (*models.Event, error)
	ListEvents(ctx context.Context, accountID uint) ([]models.Event, error)
	ListActiveEvents(ctx context.Context, accountID uint) ([]models.Event, error)
	UpdateEvent(ctx context.Context, accountID, eventID uint, input EventInput) error
	DeactivateEvent(ctx context.Context, accountID, eventID uint) error
}

type EventService struct {
	repo repositories.IEventRepository
}

func NewEventService() IEventService {
	return &EventService{repo: repositories.NewEventRepository()}
}

// normalizeEventInput enforces the dependent-field rules: a class without
// reservations has no reservation count, a free class has no cost.
func normalizeEventInput(input *EventInput) error {
	input.EventName = strings.TrimSpace(input.EventName)
	if input.EventName == "" {
		return ErrEventNameRequired
	}
	if !input.IsReservation {
		input.ReservationCount = 0
	}
	if !input.IsCostToAttend {
		input.CostToAttend = 0
	}
	return nil
}

func (s *EventService) CreateEvent(ctx context.Context, accountID uint, input EventInput) (*models.Event, error) {
	if err := normalizeEventInput(&input); err != nil {
		return nil, err
	}
	event := &models.Event{
		AccountID:        accountID,
		EventName:        input.EventName,
		EventDescription: input.EventDescription,
		IsReservation:    input.IsReservation,
		ReservationCount: input.ReservationCount,
		IsCostToAttend:   input.IsCostToAttend,
		CostToAttend:     input.CostToAttend,
		IsActive:         true,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		configslog.Log.Error("EventService.CreateEvent failed", zap.Uint("accountId", accountID), zap.Error(err))
		return nil, ErrEventCreationFailed
	}
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, accountID, eventID uint) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, accountID, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context, accountID uint) ([]models.Event, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

func (s *EventService) ListActiveEvents(ctx context.Context, accountID uint) ([]models.Event, error) {
	return s.repo.ListActiveByAccount(ctx, accountID)
}

func (s *EventService) UpdateEvent(ctx context.Context, accountID, eventID uint, input EventInput) error {
	if err := normalizeEventInput(&input); err != nil {
		return err
	}
	event := &models.Event{
		AccountID:        accountID,
		EventName:        input.EventName,
		EventDescription: input.EventDescription,
		IsReservation:    input.IsReservation,
		ReservationCount: input.ReservationCount,
		IsCostToAttend:   input.IsCostToAttend,
		CostToAttend:     input.CostToAttend,
		IsActive:         input.IsActive,
	}
	if err := s.repo.Update(ctx, eventID, event); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEventNotFound
		}
		configslog.Log.Error("EventService.UpdateEvent failed", zap.Uint("eventId", eventID), zap.Error(err))
		return ErrEventUpdateFailed
	}
	return nil
}

// DeactivateEvent retires the event without touching historic schedule or
// attendance rows.
func (s *EventService) DeactivateEvent(ctx context.Context, accountID, eventID uint) error {
	if err := s.repo.Deactivate(ctx, accountID, eventID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEventNotFound
		}
		configslog.Log.Error("EventService.DeactivateEvent failed", zap.Uint("eventId", eventID), zap.Error(err))
		return ErrEventUpdateFailed
	}
	return nil
}

var _ IEventService = (*EventService)(nil)
