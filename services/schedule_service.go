package services

import (
	"context"
	"errors"
	"time"

	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"
	"kickconnect.net/pkg/clocktime"
	"kickconnect.net/repositories"

	"go.uber.org/zap"
)

// ScheduleServiceError is the error type every schedule operation returns
// for expected failures.
type ScheduleServiceError string

func (e ScheduleServiceError) Error() string { return string(e) }

const (
	ErrScheduleNotFound       ScheduleServiceError = "schedule entry not found"
	ErrScheduleCreationFailed ScheduleServiceError = "schedule entry could not be created"
	ErrScheduleUpdateFailed   ScheduleServiceError = "schedule entry could not be updated"
	ErrScheduleDeletionFailed ScheduleServiceError = "schedule entry could not be deleted"
	ErrScheduleEventRequired  ScheduleServiceError = "an event or existing class must be selected"
	ErrScheduleInvalidDay     ScheduleServiceError = "day must be between 0 and 6"
	ErrScheduleInvalidTime    ScheduleServiceError = "start time is not a valid clock time"
	ErrScheduleNoLocations    ScheduleServiceError = "the account has no active locations to schedule"
	ErrScheduleProfileFailed  ScheduleServiceError = "instructor assignment could not be saved"
)

// AddScheduleInput is the payload for creating a schedule entry. EventID
// and ExistingClassValue are alternatives: the first one present wins.
type AddScheduleInput struct {
	AccountID          uint
	EventID            *uint
	ExistingClassValue *uint
	Day                int
	StartTime          string // "h:mm AM|PM"
	Duration           int    // minutes
	SelectedDate       *time.Time
	IsRepeat           bool
	LocationValues     models.LocationAssignment
}

// UpdateScheduleInput is the payload for rewriting an existing entry's slot
// and fan-out.
type UpdateScheduleInput struct {
	AccountID      uint
	Day            int
	StartTime      string // "h:mm AM|PM"
	Duration       int    // minutes
	SelectedDate   *time.Time
	LocationValues models.LocationAssignment
}

// IScheduleService is the scheduling API: slot writes, fan-out management
// and the weekly occurrence listings.
type IScheduleService interface {
	AddSchedule(ctx context.Context, input AddScheduleInput) (*models.ScheduleMain, error)
	UpdateSchedule(ctx context.Context, scheduleMainID uint, input UpdateScheduleInput) error
	DeleteSchedule(ctx context.Context, scheduleMainID uint) error
	AssignProfile(ctx context.Context, scheduleLocationID, profileID uint, altProfileID *uint) (created bool, err error)
	ListMainSchedule(ctx context.Context) ([]models.ScheduleOccurrence, error)
	ListLocationSchedule(ctx context.Context, locationID uint) ([]models.LocationOccurrence, error)
	NextClass(ctx context.Context, locationID uint) (*models.LocationOccurrence, error)
	ListLocationClassSchedule(ctx context.Context, locationID, accountID uint) ([]models.ClassOccurrence, error)
	ListDurations(ctx context.Context) ([]models.Duration, error)
	ListReservationCounts(ctx context.Context) ([]models.ReservationCount, error)
}

// ScheduleService implements IScheduleService.
type ScheduleService struct {
	repo         repositories.IScheduleRepository
	locationRepo repositories.ILocationRepository
	lookupRepo   repositories.ILookupRepository
	uow          repositories.IUnitOfWork
	now          func() time.Time
}

func NewScheduleService() IScheduleService {
	return &ScheduleService{
		repo:         repositories.NewScheduleRepository(),
		locationRepo: repositories.NewLocationRepository(),
		lookupRepo:   repositories.NewLookupRepository(),
		uow:          repositories.NewUnitOfWork(),
		now:          time.Now,
	}
}

// resolveSlot normalizes the 12-hour start time and duration into the
// stored "HH:MM:SS" pair and checks the day range.
func resolveSlot(day int, startTime string, duration int) (string, string, error) {
	if day < 0 || day > 6 {
		return "", "", ErrScheduleInvalidDay
	}
	start, end, err := clocktime.EndTime(startTime, duration)
	if err != nil {
		return "", "", ErrScheduleInvalidTime
	}
	return start, end, nil
}

// fanOutLocations computes the location id set for an assignment: the
// pinned id, or every active location of the account.
func fanOutLocations(ctx context.Context, locationRepo repositories.ILocationRepository, accountID uint, assignment models.LocationAssignment) ([]uint, error) {
	if !assignment.IsAll() {
		return []uint{assignment.LocationID()}, nil
	}
	locations, err := locationRepo.ListActiveByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, ErrScheduleNoLocations
	}
	ids := make([]uint, 0, len(locations))
	for _, l := range locations {
		ids = append(ids, l.LocationID)
	}
	return ids, nil
}

// AddSchedule creates the entry and its location fan-out in one
// transaction. Either both land or neither does.
func (s *ScheduleService) AddSchedule(ctx context.Context, input AddScheduleInput) (*models.ScheduleMain, error) {
	eventID := firstEventID(input.EventID, input.ExistingClassValue)
	if eventID == 0 {
		return nil, ErrScheduleEventRequired
	}
	start, end, err := resolveSlot(input.Day, input.StartTime, input.Duration)
	if err != nil {
		return nil, err
	}

	main := &models.ScheduleMain{
		AccountID:    input.AccountID,
		EventID:      eventID,
		Day:          input.Day,
		StartTime:    start,
		EndTime:      end,
		SelectedDate: input.SelectedDate,
		IsRepeat:     input.IsRepeat,
		IsActive:     true,
	}
	main.CreatedBy = "API add-schedule"

	err = s.uow.InTx(ctx, func(r repositories.Repos) error {
		if err := r.Schedules.CreateMain(ctx, main); err != nil {
			return err
		}
		locationIDs, err := fanOutLocations(ctx, r.Locations, input.AccountID, input.LocationValues)
		if err != nil {
			return err
		}
		for _, locationID := range locationIDs {
			if err := r.Schedules.InsertLocation(ctx, main.ScheduleMainID, locationID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var svcErr ScheduleServiceError
		if errors.As(err, &svcErr) {
			return nil, svcErr
		}
		configslog.Log.Error("ScheduleService.AddSchedule failed",
			zap.Uint("accountId", input.AccountID), zap.Error(err))
		return nil, ErrScheduleCreationFailed
	}
	configslog.SLog.Infof("Schedule entry created: id=%d account=%d event=%d", main.ScheduleMainID, main.AccountID, eventID)
	return main, nil
}

// UpdateSchedule rewrites the slot and replaces the whole fan-out set in
// one transaction. The old set is deleted first so the insert is a clean
// replacement, never a merge.
func (s *ScheduleService) UpdateSchedule(ctx context.Context, scheduleMainID uint, input UpdateScheduleInput) error {
	start, end, err := resolveSlot(input.Day, input.StartTime, input.Duration)
	if err != nil {
		return err
	}

	err = s.uow.InTx(ctx, func(r repositories.Repos) error {
		upd := repositories.ScheduleMainUpdate{
			StartTime:    start,
			EndTime:      end,
			Day:          input.Day,
			SelectedDate: input.SelectedDate,
		}
		if err := r.Schedules.UpdateMain(ctx, scheduleMainID, upd); err != nil {
			return err
		}
		if _, err := r.Schedules.DeleteLocations(ctx, scheduleMainID); err != nil {
			return err
		}
		locationIDs, err := fanOutLocations(ctx, r.Locations, input.AccountID, input.LocationValues)
		if err != nil {
			return err
		}
		for _, locationID := range locationIDs {
			if err := r.Schedules.InsertLocation(ctx, scheduleMainID, locationID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrScheduleNotFound
		}
		var svcErr ScheduleServiceError
		if errors.As(err, &svcErr) {
			return svcErr
		}
		configslog.Log.Error("ScheduleService.UpdateSchedule failed",
			zap.Uint("scheduleMainId", scheduleMainID), zap.Error(err))
		return ErrScheduleUpdateFailed
	}
	return nil
}

// DeleteSchedule removes the entry and its fan-out rows in one
// transaction. Not-found is keyed to the entry itself: a missing fan-out
// set alone is not an error.
func (s *ScheduleService) DeleteSchedule(ctx context.Context, scheduleMainID uint) error {
	err := s.uow.InTx(ctx, func(r repositories.Repos) error {
		if _, err := r.Schedules.DeleteLocations(ctx, scheduleMainID); err != nil {
			return err
		}
		return r.Schedules.DeleteMain(ctx, scheduleMainID)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrScheduleNotFound
		}
		configslog.Log.Error("ScheduleService.DeleteSchedule failed",
			zap.Uint("scheduleMainId", scheduleMainID), zap.Error(err))
		return ErrScheduleDeletionFailed
	}
	configslog.SLog.Infof("Schedule entry deleted: id=%d", scheduleMainID)
	return nil
}

// AssignProfile upserts the instructor assignment of one location row.
func (s *ScheduleService) AssignProfile(ctx context.Context, scheduleLocationID, profileID uint, altProfileID *uint) (bool, error) {
	if scheduleLocationID == 0 || profileID == 0 {
		return false, ErrScheduleProfileFailed
	}
	created, err := s.repo.UpsertProfileAssignment(ctx, scheduleLocationID, profileID, altProfileID)
	if err != nil {
		configslog.Log.Error("ScheduleService.AssignProfile failed",
			zap.Uint("scheduleLocationId", scheduleLocationID), zap.Error(err))
		return false, ErrScheduleProfileFailed
	}
	return created, nil
}

func (s *ScheduleService) ListMainSchedule(ctx context.Context) ([]models.ScheduleOccurrence, error) {
	candidates, err := s.repo.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}
	return projectWeek(candidates, s.now()), nil
}

func (s *ScheduleService) ListLocationSchedule(ctx context.Context, locationID uint) ([]models.LocationOccurrence, error) {
	candidates, err := s.repo.ListLocationCandidates(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return projectLocationWeek(candidates, s.now()), nil
}

// NextClass returns the soonest upcoming occurrence at the location, or
// nil when the week holds none.
func (s *ScheduleService) NextClass(ctx context.Context, locationID uint) (*models.LocationOccurrence, error) {
	candidates, err := s.repo.ListLocationCandidates(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return nextOccurrence(candidates, s.now()), nil
}

func (s *ScheduleService) ListLocationClassSchedule(ctx context.Context, locationID, accountID uint) ([]models.ClassOccurrence, error) {
	candidates, err := s.repo.ListAccountLocationCandidates(ctx, accountID, locationID)
	if err != nil {
		return nil, err
	}
	return projectClassWeek(candidates, s.now()), nil
}

func (s *ScheduleService) ListDurations(ctx context.Context) ([]models.Duration, error) {
	return s.lookupRepo.ListDurations(ctx)
}

func (s *ScheduleService) ListReservationCounts(ctx context.Context) ([]models.ReservationCount, error) {
	return s.lookupRepo.ListReservationCounts(ctx)
}

func firstEventID(ids ...*uint) uint {
	for _, id := range ids {
		if id != nil && *id != 0 {
			return *id
		}
	}
	return 0
}

var _ IScheduleService = (*ScheduleService)(nil)
