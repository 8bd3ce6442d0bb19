package services

import (
	"context"
	"errors"
	"testing"

	"kickconnect.net/models"
	"kickconnect.net/repositories"
)

type stubEventRepo struct {
	events map[uint]*models.Event
	nextID uint
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: map[uint]*models.Event{}}
}

func (s *stubEventRepo) Create(_ context.Context, event *models.Event) error {
	s.nextID++
	event.EventID = s.nextID
	copied := *event
	s.events[event.EventID] = &copied
	return nil
}

func (s *stubEventRepo) FindByID(_ context.Context, accountID, eventID uint) (*models.Event, error) {
	event, ok := s.events[eventID]
	if !ok || event.AccountID != accountID {
		return nil, repositories.ErrNotFound
	}
	return event, nil
}

func (s *stubEventRepo) ListByAccount(_ context.Context, accountID uint) ([]models.Event, error) {
	var out []models.Event
	for _, e := range s.events {
		if e.AccountID == accountID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *stubEventRepo) ListActiveByAccount(_ context.Context, accountID uint) ([]models.Event, error) {
	var out []models.Event
	for _, e := range s.events {
		if e.AccountID == accountID && e.IsActive {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *stubEventRepo) Update(_ context.Context, eventID uint, event *models.Event) error {
	stored, ok := s.events[eventID]
	if !ok {
		return repositories.ErrNotFound
	}
	id, account := stored.EventID, stored.AccountID
	*stored = *event
	stored.EventID, stored.AccountID = id, account
	return nil
}

func (s *stubEventRepo) Deactivate(_ context.Context, accountID, eventID uint) error {
	event, ok := s.events[eventID]
	if !ok || event.AccountID != accountID {
		return repositories.ErrNotFound
	}
	event.IsActive = false
	return nil
}

func TestCreateEventForcesDependentFields(t *testing.T) {
	repo := newStubEventRepo()
	svc := &EventService{repo: repo}

	event, err := svc.CreateEvent(context.Background(), 1, EventInput{
		EventName:        "Open Mat",
		IsReservation:    false,
		ReservationCount: 25,
		IsCostToAttend:   false,
		CostToAttend:     15.00,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if event.ReservationCount != 0 {
		t.Errorf("reservationCount = %d, want 0 when reservations are off", event.ReservationCount)
	}
	if event.CostToAttend != 0 {
		t.Errorf("costToAttend = %v, want 0 when the class is free", event.CostToAttend)
	}
}

func TestCreateEventKeepsDependentFieldsWhenEnabled(t *testing.T) {
	repo := newStubEventRepo()
	svc := &EventService{repo: repo}

	event, err := svc.CreateEvent(context.Background(), 1, EventInput{
		EventName:        "Sparring",
		IsReservation:    true,
		ReservationCount: 12,
		IsCostToAttend:   true,
		CostToAttend:     20.00,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if event.ReservationCount != 12 || event.CostToAttend != 20.00 {
		t.Errorf("dependent fields were clobbered: count=%d cost=%v", event.ReservationCount, event.CostToAttend)
	}
}

func TestCreateEventRequiresName(t *testing.T) {
	svc := &EventService{repo: newStubEventRepo()}

	_, err := svc.CreateEvent(context.Background(), 1, EventInput{EventName: "   "})
	if !errors.Is(err, ErrEventNameRequired) {
		t.Errorf("err = %v, want %v", err, ErrEventNameRequired)
	}
}

func TestUpdateEventForcesDependentFields(t *testing.T) {
	repo := newStubEventRepo()
	svc := &EventService{repo: repo}

	event, _ := svc.CreateEvent(context.Background(), 1, EventInput{
		EventName: "Sparring", IsReservation: true, ReservationCount: 12,
	})

	err := svc.UpdateEvent(context.Background(), 1, event.EventID, EventInput{
		EventName: "Sparring", IsReservation: false, ReservationCount: 12, IsActive: true,
	})
	if err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}
	if got := repo.events[event.EventID].ReservationCount; got != 0 {
		t.Errorf("reservationCount after update = %d, want 0", got)
	}
}

func TestDeactivateEventSoftDeletes(t *testing.T) {
	repo := newStubEventRepo()
	svc := &EventService{repo: repo}

	event, _ := svc.CreateEvent(context.Background(), 1, EventInput{EventName: "Yoga"})

	if err := svc.DeactivateEvent(context.Background(), 1, event.EventID); err != nil {
		t.Fatalf("DeactivateEvent: %v", err)
	}
	stored, ok := repo.events[event.EventID]
	if !ok {
		t.Fatalf("event row was removed; deactivation must keep it")
	}
	if stored.IsActive {
		t.Errorf("isActive = true after deactivation")
	}
}

func TestDeactivateEventUnknown(t *testing.T) {
	svc := &EventService{repo: newStubEventRepo()}
	if err := svc.DeactivateEvent(context.Background(), 1, 99); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("err = %v, want %v", err, ErrEventNotFound)
	}
}
