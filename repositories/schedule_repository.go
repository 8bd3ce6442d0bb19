package repositories

import (
	"context"
	"errors"
	"time"

	"kickconnect.net/configs/configsdatabase"
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduleMainUpdate carries the fields UpdateSchedule may change.
type ScheduleMainUpdate struct {
	StartTime    string
	EndTime      string
	Day          int
	SelectedDate *time.Time
}

// ScheduleCandidate is a schedule entry joined to its active event, with the
// ids of every location it is assigned to. The occurrence projector decides
// which candidates are in effect for the current week.
type ScheduleCandidate struct {
	Main        models.ScheduleMain
	Event       models.Event
	LocationIDs []uint
}

// LocationScheduleCandidate is the per-location variant including the
// optional instructor assignment of that location row.
type LocationScheduleCandidate struct {
	Main               models.ScheduleMain
	Event              models.Event
	ScheduleLocationID uint
	LocationID         uint
	Profile            *models.ScheduleProfile
}

// IScheduleRepository is persistence for schedule entries, their location
// fan-out rows and profile assignments. No business logic lives here.
type IScheduleRepository interface {
	CreateMain(ctx context.Context, main *models.ScheduleMain) error
	UpdateMain(ctx context.Context, scheduleMainID uint, upd ScheduleMainUpdate) error
	DeleteMain(ctx context.Context, scheduleMainID uint) error
	DeleteLocations(ctx context.Context, scheduleMainID uint) (int64, error)
	InsertLocation(ctx context.Context, scheduleMainID, locationID uint) error
	ListCandidates(ctx context.Context) ([]ScheduleCandidate, error)
	ListLocationCandidates(ctx context.Context, locationID uint) ([]LocationScheduleCandidate, error)
	ListAccountLocationCandidates(ctx context.Context, accountID, locationID uint) ([]LocationScheduleCandidate, error)
	UpsertProfileAssignment(ctx context.Context, scheduleLocationID, profileID uint, altProfileID *uint) (created bool, err error)
}

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository() IScheduleRepository {
	return &ScheduleRepository{db: configsdatabase.GetDB()}
}

// NewScheduleRepositoryTx binds the repository to an open transaction.
func NewScheduleRepositoryTx(tx *gorm.DB) IScheduleRepository {
	return &ScheduleRepository{db: tx}
}

func (r *ScheduleRepository) CreateMain(ctx context.Context, main *models.ScheduleMain) error {
	if main == nil || main.EventID == 0 {
		return errors.New("schedule entry needs an event reference")
	}
	return r.db.WithContext(ctx).Create(main).Error
}

func (r *ScheduleRepository) UpdateMain(ctx context.Context, scheduleMainID uint, upd ScheduleMainUpdate) error {
	if scheduleMainID == 0 {
		return ErrNotFound
	}
	result := r.db.WithContext(ctx).Model(&models.ScheduleMain{}).
		Where("schedule_main_id = ?", scheduleMainID).
		Updates(map[string]any{
			"start_time":    upd.StartTime,
			"end_time":      upd.EndTime,
			"day":           upd.Day,
			"selected_date": upd.SelectedDate,
			"updated_by":    "API update-schedule",
		})
	if result.Error != nil {
		configslog.Log.Error("ScheduleRepository.UpdateMain: DB error",
			zap.Uint("scheduleMainId", scheduleMainID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ScheduleRepository) DeleteMain(ctx context.Context, scheduleMainID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ScheduleMain{}, "schedule_main_id = ?", scheduleMainID)
	if result.Error != nil {
		configslog.Log.Error("ScheduleRepository.DeleteMain: DB error",
			zap.Uint("scheduleMainId", scheduleMainID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteLocations removes the whole fan-out set. Zero rows is not an error
// here; callers decide what an empty set means.
func (r *ScheduleRepository) DeleteLocations(ctx context.Context, scheduleMainID uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.ScheduleLocation{}, "schedule_main_id = ?", scheduleMainID)
	if result.Error != nil {
		configslog.Log.Error("ScheduleRepository.DeleteLocations: DB error",
			zap.Uint("scheduleMainId", scheduleMainID), zap.Error(result.Error))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *ScheduleRepository) InsertLocation(ctx context.Context, scheduleMainID, locationID uint) error {
	row := models.ScheduleLocation{
		ScheduleMainID: scheduleMainID,
		LocationID:     locationID,
		IsActive:       true,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *ScheduleRepository) ListCandidates(ctx context.Context) ([]ScheduleCandidate, error) {
	var mains []models.ScheduleMain
	err := r.db.WithContext(ctx).
		Joins("JOIN events ON events.event_id = schedule_mains.event_id AND events.is_active = ?", true).
		Preload("Event").
		Preload("Locations").
		Find(&mains).Error
	if err != nil {
		configslog.Log.Error("ScheduleRepository.ListCandidates: DB error", zap.Error(err))
		return nil, err
	}

	candidates := make([]ScheduleCandidate, 0, len(mains))
	for _, m := range mains {
		c := ScheduleCandidate{Main: m, Event: m.Event}
		for _, sl := range m.Locations {
			c.LocationIDs = append(c.LocationIDs, sl.LocationID)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

func (r *ScheduleRepository) ListLocationCandidates(ctx context.Context, locationID uint) ([]LocationScheduleCandidate, error) {
	return r.listLocationCandidates(ctx, 0, locationID)
}

func (r *ScheduleRepository) ListAccountLocationCandidates(ctx context.Context, accountID, locationID uint) ([]LocationScheduleCandidate, error) {
	return r.listLocationCandidates(ctx, accountID, locationID)
}

func (r *ScheduleRepository) listLocationCandidates(ctx context.Context, accountID, locationID uint) ([]LocationScheduleCandidate, error) {
	db := r.db.WithContext(ctx)

	var locationRows []models.ScheduleLocation
	if err := db.Where("location_id = ?", locationID).Find(&locationRows).Error; err != nil {
		configslog.Log.Error("ScheduleRepository.listLocationCandidates: location rows",
			zap.Uint("locationId", locationID), zap.Error(err))
		return nil, err
	}
	if len(locationRows) == 0 {
		return nil, nil
	}

	mainIDs := make([]uint, 0, len(locationRows))
	locationRowIDs := make([]uint, 0, len(locationRows))
	for _, sl := range locationRows {
		mainIDs = append(mainIDs, sl.ScheduleMainID)
		locationRowIDs = append(locationRowIDs, sl.ScheduleLocationID)
	}

	mainQuery := db.
		Joins("JOIN events ON events.event_id = schedule_mains.event_id AND events.is_active = ?", true).
		Preload("Event").
		Where("schedule_main_id IN ?", mainIDs)
	if accountID != 0 {
		mainQuery = mainQuery.Where("schedule_mains.account_id = ?", accountID)
	}
	var mains []models.ScheduleMain
	if err := mainQuery.Find(&mains).Error; err != nil {
		configslog.Log.Error("ScheduleRepository.listLocationCandidates: main rows",
			zap.Uint("locationId", locationID), zap.Error(err))
		return nil, err
	}
	mainByID := make(map[uint]models.ScheduleMain, len(mains))
	for _, m := range mains {
		mainByID[m.ScheduleMainID] = m
	}

	var profiles []models.ScheduleProfile
	if err := db.Where("schedule_location_id IN ?", locationRowIDs).Find(&profiles).Error; err != nil {
		configslog.Log.Error("ScheduleRepository.listLocationCandidates: profile rows",
			zap.Uint("locationId", locationID), zap.Error(err))
		return nil, err
	}
	profileByLocationRow := make(map[uint]models.ScheduleProfile, len(profiles))
	for _, p := range profiles {
		profileByLocationRow[p.ScheduleLocationID] = p
	}

	candidates := make([]LocationScheduleCandidate, 0, len(locationRows))
	for _, sl := range locationRows {
		main, ok := mainByID[sl.ScheduleMainID]
		if !ok {
			// inactive event or other account; filtered out by the main query
			continue
		}
		c := LocationScheduleCandidate{
			Main:               main,
			Event:              main.Event,
			ScheduleLocationID: sl.ScheduleLocationID,
			LocationID:         sl.LocationID,
		}
		if p, ok := profileByLocationRow[sl.ScheduleLocationID]; ok {
			profile := p
			c.Profile = &profile
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// UpsertProfileAssignment writes the instructor assignment keyed by its
// schedule location row. Returns whether a new row was created.
func (r *ScheduleRepository) UpsertProfileAssignment(ctx context.Context, scheduleLocationID, profileID uint, altProfileID *uint) (bool, error) {
	db := r.db.WithContext(ctx)

	var existing models.ScheduleProfile
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("schedule_location_id = ?", scheduleLocationID).
		First(&existing).Error
	switch {
	case err == nil:
		result := db.Model(&existing).Updates(map[string]any{
			"profile_id":     profileID,
			"alt_profile_id": altProfileID,
		})
		if result.Error != nil {
			configslog.Log.Error("ScheduleRepository.UpsertProfileAssignment: update",
				zap.Uint("scheduleLocationId", scheduleLocationID), zap.Error(result.Error))
			return false, result.Error
		}
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		row := models.ScheduleProfile{
			ScheduleLocationID: scheduleLocationID,
			ProfileID:          profileID,
			AltProfileID:       altProfileID,
		}
		if err := db.Create(&row).Error; err != nil {
			configslog.Log.Error("ScheduleRepository.UpsertProfileAssignment: insert",
				zap.Uint("scheduleLocationId", scheduleLocationID), zap.Error(err))
			return false, err
		}
		return true, nil
	default:
		configslog.Log.Error("ScheduleRepository.UpsertProfileAssignment: lookup",
			zap.Uint("scheduleLocationId", scheduleLocationID), zap.Error(err))
		return false, err
	}
}

var _ IScheduleRepository = (*ScheduleRepository)(nil)
