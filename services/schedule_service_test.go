package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"kickconnect.net/models"
	"kickconnect.net/repositories"
)

// --- stubs ---

type stubScheduleRepo struct {
	mains            map[uint]*models.ScheduleMain
	fanOut           map[uint][]uint // scheduleMainID -> locationIDs
	nextMainID       uint
	candidates       []repositories.ScheduleCandidate
	locCandidates    []repositories.LocationScheduleCandidate
	insertCalls      int
	failInsertAfter  int // fail the Nth InsertLocation call (0 = never)
	failUpdate       error
	profileUpserts   int
	upsertCreatedVal bool
}

func newStubScheduleRepo() *stubScheduleRepo {
	return &stubScheduleRepo{
		mains:  map[uint]*models.ScheduleMain{},
		fanOut: map[uint][]uint{},
	}
}

func (s *stubScheduleRepo) CreateMain(_ context.Context, main *models.ScheduleMain) error {
	s.nextMainID++
	main.ScheduleMainID = s.nextMainID
	copied := *main
	s.mains[main.ScheduleMainID] = &copied
	return nil
}

func (s *stubScheduleRepo) UpdateMain(_ context.Context, id uint, upd repositories.ScheduleMainUpdate) error {
	if s.failUpdate != nil {
		return s.failUpdate
	}
	main, ok := s.mains[id]
	if !ok {
		return repositories.ErrNotFound
	}
	main.StartTime = upd.StartTime
	main.EndTime = upd.EndTime
	main.Day = upd.Day
	main.SelectedDate = upd.SelectedDate
	return nil
}

func (s *stubScheduleRepo) DeleteMain(_ context.Context, id uint) error {
	if _, ok := s.mains[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.mains, id)
	return nil
}

func (s *stubScheduleRepo) DeleteLocations(_ context.Context, id uint) (int64, error) {
	n := int64(len(s.fanOut[id]))
	delete(s.fanOut, id)
	return n, nil
}

func (s *stubScheduleRepo) InsertLocation(_ context.Context, mainID, locationID uint) error {
	s.insertCalls++
	if s.failInsertAfter > 0 && s.insertCalls >= s.failInsertAfter {
		return errors.New("insert failed")
	}
	s.fanOut[mainID] = append(s.fanOut[mainID], locationID)
	return nil
}

func (s *stubScheduleRepo) ListCandidates(context.Context) ([]repositories.ScheduleCandidate, error) {
	return s.candidates, nil
}

func (s *stubScheduleRepo) ListLocationCandidates(context.Context, uint) ([]repositories.LocationScheduleCandidate, error) {
	return s.locCandidates, nil
}

func (s *stubScheduleRepo) ListAccountLocationCandidates(context.Context, uint, uint) ([]repositories.LocationScheduleCandidate, error) {
	return s.locCandidates, nil
}

func (s *stubScheduleRepo) UpsertProfileAssignment(context.Context, uint, uint, *uint) (bool, error) {
	s.profileUpserts++
	return s.upsertCreatedVal, nil
}

type stubLocationRepo struct {
	active []models.Location
}

func (s *stubLocationRepo) Create(context.Context, *models.Location) error { return nil }
func (s *stubLocationRepo) FindByID(context.Context, uint) (*models.Location, error) {
	return nil, repositories.ErrNotFound
}
func (s *stubLocationRepo) ListAll(context.Context) ([]models.Location, error)      { return s.active, nil }
func (s *stubLocationRepo) ListActive(context.Context) ([]models.Location, error)   { return s.active, nil }
func (s *stubLocationRepo) ListInactive(context.Context) ([]models.Location, error) { return nil, nil }
func (s *stubLocationRepo) ListActiveByAccount(context.Context, uint) ([]models.Location, error) {
	return s.active, nil
}
func (s *stubLocationRepo) Update(context.Context, uint, *models.Location) error { return nil }

// stubUnitOfWork hands the same stubs to the closure; commit/rollback is
// exercised only through the returned error.
type stubUnitOfWork struct {
	repos repositories.Repos
}

func (u *stubUnitOfWork) InTx(_ context.Context, fn func(repositories.Repos) error) error {
	return fn(u.repos)
}

func newTestService(scheduleRepo *stubScheduleRepo, locationRepo *stubLocationRepo, now time.Time) *ScheduleService {
	return &ScheduleService{
		repo:         scheduleRepo,
		locationRepo: locationRepo,
		uow: &stubUnitOfWork{repos: repositories.Repos{
			Schedules: scheduleRepo,
			Locations: locationRepo,
		}},
		now: func() time.Time { return now },
	}
}

func locations(ids ...uint) []models.Location {
	out := make([]models.Location, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Location{LocationID: id, IsActive: true})
	}
	return out
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func uintPtr(v uint) *uint { return &v }

// --- AddSchedule ---

func TestAddScheduleFansOutToAllLocations(t *testing.T) {
	repo := newStubScheduleRepo()
	locRepo := &stubLocationRepo{active: locations(10, 11, 12)}
	svc := newTestService(repo, locRepo, time.Now())

	main, err := svc.AddSchedule(context.Background(), AddScheduleInput{
		AccountID:      1,
		EventID:        uintPtr(5),
		Day:            2,
		StartTime:      "6:30 PM",
		Duration:       60,
		IsRepeat:       true,
		LocationValues: models.AllLocations(),
	})
	if err != nil {
		t.Fatalf("AddSchedule: %v", err)
	}
	if main.StartTime != "18:30:00" || main.EndTime != "19:30:00" {
		t.Errorf("slot = %s-%s, want 18:30:00-19:30:00", main.StartTime, main.EndTime)
	}
	got := repo.fanOut[main.ScheduleMainID]
	if len(got) != 3 {
		t.Fatalf("fan-out rows = %d, want 3", len(got))
	}
}

func TestAddSchedulePinnedInsertsOneRow(t *testing.T) {
	repo := newStubScheduleRepo()
	locRepo := &stubLocationRepo{active: locations(10, 11, 12)}
	svc := newTestService(repo, locRepo, time.Now())

	main, err := svc.AddSchedule(context.Background(), AddScheduleInput{
		AccountID:      1,
		EventID:        uintPtr(5),
		Day:            0,
		StartTime:      "9:00 AM",
		Duration:       45,
		IsRepeat:       true,
		LocationValues: models.PinnedLocation(11),
	})
	if err != nil {
		t.Fatalf("AddSchedule: %v", err)
	}
	got := repo.fanOut[main.ScheduleMainID]
	if len(got) != 1 || got[0] != 11 {
		t.Errorf("fan-out = %v, want [11]", got)
	}
}

func TestAddScheduleExistingClassValueWins(t *testing.T) {
	repo := newStubScheduleRepo()
	svc := newTestService(repo, &stubLocationRepo{active: locations(10)}, time.Now())

	main, err := svc.AddSchedule(context.Background(), AddScheduleInput{
		AccountID:          1,
		ExistingClassValue: uintPtr(7),
		Day:                3,
		StartTime:          "7:00 AM",
		Duration:           30,
		IsRepeat:           true,
		LocationValues:     models.PinnedLocation(10),
	})
	if err != nil {
		t.Fatalf("AddSchedule: %v", err)
	}
	if main.EventID != 7 {
		t.Errorf("eventID = %d, want 7", main.EventID)
	}
}

func TestAddScheduleValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   AddScheduleInput
		wantErr error
	}{
		{
			name: "no event reference",
			input: AddScheduleInput{
				AccountID: 1, Day: 1, StartTime: "9:00 AM", Duration: 60,
				LocationValues: models.PinnedLocation(10),
			},
			wantErr: ErrScheduleEventRequired,
		},
		{
			name: "day out of range",
			input: AddScheduleInput{
				AccountID: 1, EventID: uintPtr(5), Day: 7, StartTime: "9:00 AM", Duration: 60,
				LocationValues: models.PinnedLocation(10),
			},
			wantErr: ErrScheduleInvalidDay,
		},
		{
			name: "garbage start time",
			input: AddScheduleInput{
				AccountID: 1, EventID: uintPtr(5), Day: 1, StartTime: "25:00 XX", Duration: 60,
				LocationValues: models.PinnedLocation(10),
			},
			wantErr: ErrScheduleInvalidTime,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubScheduleRepo()
			svc := newTestService(repo, &stubLocationRepo{active: locations(10)}, time.Now())
			_, err := svc.AddSchedule(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if len(repo.mains) != 0 {
				t.Errorf("entry was persisted despite validation failure")
			}
		})
	}
}

func TestAddScheduleNoActiveLocations(t *testing.T) {
	repo := newStubScheduleRepo()
	svc := newTestService(repo, &stubLocationRepo{}, time.Now())

	_, err := svc.AddSchedule(context.Background(), AddScheduleInput{
		AccountID: 1, EventID: uintPtr(5), Day: 1, StartTime: "9:00 AM", Duration: 60,
		IsRepeat: true, LocationValues: models.AllLocations(),
	})
	if !errors.Is(err, ErrScheduleNoLocations) {
		t.Errorf("err = %v, want %v", err, ErrScheduleNoLocations)
	}
}

func TestAddScheduleInsertFailureSurfacesAsCreationError(t *testing.T) {
	repo := newStubScheduleRepo()
	repo.failInsertAfter = 2
	svc := newTestService(repo, &stubLocationRepo{active: locations(10, 11, 12)}, time.Now())

	_, err := svc.AddSchedule(context.Background(), AddScheduleInput{
		AccountID: 1, EventID: uintPtr(5), Day: 1, StartTime: "9:00 AM", Duration: 60,
		IsRepeat: true, LocationValues: models.AllLocations(),
	})
	if !errors.Is(err, ErrScheduleCreationFailed) {
		t.Errorf("err = %v, want %v", err, ErrScheduleCreationFailed)
	}
}

// --- UpdateSchedule ---

func TestUpdateScheduleReplacesFanOut(t *testing.T) {
	repo := newStubScheduleRepo()
	locRepo := &stubLocationRepo{active: locations(10, 11)}
	svc := newTestService(repo, locRepo, time.Now())

	main, err := svc.AddSchedule(context.Background(), AddScheduleInput{
		AccountID: 1, EventID: uintPtr(5), Day: 1, StartTime: "9:00 AM", Duration: 60,
		IsRepeat: true, LocationValues: models.AllLocations(),
	})
	if err != nil {
		t.Fatalf("AddSchedule: %v", err)
	}

	err = svc.UpdateSchedule(context.Background(), main.ScheduleMainID, UpdateScheduleInput{
		AccountID: 1, Day: 4, StartTime: "5:15 PM", Duration: 90,
		LocationValues: models.PinnedLocation(11),
	})
	if err != nil {
		t.Fatalf("UpdateSchedule: %v", err)
	}

	got := repo.fanOut[main.ScheduleMainID]
	if len(got) != 1 || got[0] != 11 {
		t.Errorf("fan-out after update = %v, want [11]", got)
	}
	updated := repo.mains[main.ScheduleMainID]
	if updated.Day != 4 || updated.StartTime != "17:15:00" || updated.EndTime != "18:45:00" {
		t.Errorf("slot after update = day %d %s-%s", updated.Day, updated.StartTime, updated.EndTime)
	}
}

func TestUpdateScheduleRepeatedRunsConverge(t *testing.T) {
	repo := newStubScheduleRepo()
	locRepo := &stubLocationRepo{active: locations(10, 11, 12)}
	svc := newTestService(repo, locRepo, time.Now())

	main, _ := svc.AddSchedule(context.Background(), AddScheduleInput{
		AccountID: 1, EventID: uintPtr(5), Day: 1, StartTime: "9:00 AM", Duration: 60,
		IsRepeat: true, LocationValues: models.AllLocations(),
	})

	input := UpdateScheduleInput{
		AccountID: 1, Day: 2, StartTime: "10:00 AM", Duration: 60,
		LocationValues: models.AllLocations(),
	}
	for i := 0; i < 3; i++ {
		if err := svc.UpdateSchedule(context.Background(), main.ScheduleMainID, input); err != nil {
			t.Fatalf("UpdateSchedule run %d: %v", i, err)
		}
	}
	if got := len(repo.fanOut[main.ScheduleMainID]); got != 3 {
		t.Errorf("fan-out rows after repeated updates = %d, want 3", got)
	}
}

func TestUpdateScheduleUnknownEntry(t *testing.T) {
	repo := newStubScheduleRepo()
	svc := newTestService(repo, &stubLocationRepo{active: locations(10)}, time.Now())

	err := svc.UpdateSchedule(context.Background(), 999, UpdateScheduleInput{
		AccountID: 1, Day: 1, StartTime: "9:00 AM", Duration: 60,
		LocationValues: models.PinnedLocation(10),
	})
	if !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("err = %v, want %v", err, ErrScheduleNotFound)
	}
}

// --- DeleteSchedule ---

func TestDeleteScheduleRemovesEntryAndFanOut(t *testing.T) {
	repo := newStubScheduleRepo()
	svc := newTestService(repo, &stubLocationRepo{active: locations(10, 11)}, time.Now())

	main, _ := svc.AddSchedule(context.Background(), AddScheduleInput{
		AccountID: 1, EventID: uintPtr(5), Day: 1, StartTime: "9:00 AM", Duration: 60,
		IsRepeat: true, LocationValues: models.AllLocations(),
	})

	if err := svc.DeleteSchedule(context.Background(), main.ScheduleMainID); err != nil {
		t.Fatalf("DeleteSchedule: %v", err)
	}
	if _, ok := repo.mains[main.ScheduleMainID]; ok {
		t.Errorf("entry still present after delete")
	}
	if len(repo.fanOut[main.ScheduleMainID]) != 0 {
		t.Errorf("fan-out rows still present after delete")
	}
}

func TestDeleteScheduleUnknownEntry(t *testing.T) {
	repo := newStubScheduleRepo()
	svc := newTestService(repo, &stubLocationRepo{}, time.Now())

	err := svc.DeleteSchedule(context.Background(), 42)
	if !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("err = %v, want %v", err, ErrScheduleNotFound)
	}
}

// --- occurrence projection ---

func candidate(id uint, day int, start, end string, repeat bool, selected *time.Time, locationIDs ...uint) repositories.ScheduleCandidate {
	return repositories.ScheduleCandidate{
		Main: models.ScheduleMain{
			ScheduleMainID: id, AccountID: 1, EventID: 5,
			Day: day, StartTime: start, EndTime: end,
			IsRepeat: repeat, SelectedDate: selected, IsActive: true,
		},
		Event:       models.Event{EventID: 5, EventName: "Kickboxing", IsActive: true},
		LocationIDs: locationIDs,
	}
}

func TestListMainScheduleWeekFilter(t *testing.T) {
	// Wednesday 2026-01-14, ISO week 3 of 2026.
	now := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)

	repo := newStubScheduleRepo()
	repo.candidates = []repositories.ScheduleCandidate{
		candidate(1, 1, "09:00:00", "10:00:00", true, nil, 10),                          // repeating: always in
		candidate(2, 2, "10:00:00", "11:00:00", false, datePtr(2026, time.January, 16), 10), // same ISO week
		candidate(3, 3, "11:00:00", "12:00:00", false, datePtr(2026, time.January, 23), 10), // next week
		candidate(4, 4, "12:00:00", "13:00:00", false, nil, 10),                         // one-off without a date
	}
	svc := newTestService(repo, &stubLocationRepo{}, now)

	rows, err := svc.ListMainSchedule(context.Background())
	if err != nil {
		t.Fatalf("ListMainSchedule: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].ScheduleMainID != 1 || rows[1].ScheduleMainID != 2 {
		t.Errorf("row ids = %d,%d, want 1,2", rows[0].ScheduleMainID, rows[1].ScheduleMainID)
	}
}

func TestListMainScheduleISOWeekSpansYearBoundary(t *testing.T) {
	// 2027-01-01 is a Friday in ISO week 53 of 2026. A one-off selected for
	// Monday 2026-12-28 shares that week even though the years differ.
	now := time.Date(2027, 1, 1, 9, 0, 0, 0, time.UTC)

	repo := newStubScheduleRepo()
	repo.candidates = []repositories.ScheduleCandidate{
		candidate(1, 1, "09:00:00", "10:00:00", false, datePtr(2026, time.December, 28), 10),
		candidate(2, 2, "09:00:00", "10:00:00", false, datePtr(2027, time.January, 4), 10), // week 1 of 2027
	}
	svc := newTestService(repo, &stubLocationRepo{}, now)

	rows, err := svc.ListMainSchedule(context.Background())
	if err != nil {
		t.Fatalf("ListMainSchedule: %v", err)
	}
	if len(rows) != 1 || rows[0].ScheduleMainID != 1 {
		t.Fatalf("rows = %+v, want only entry 1", rows)
	}
}

func TestListMainScheduleCollapsesFanOut(t *testing.T) {
	now := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)
	repo := newStubScheduleRepo()
	repo.candidates = []repositories.ScheduleCandidate{
		candidate(1, 1, "09:00:00", "10:00:00", true, nil, 10, 11, 12),
		candidate(2, 2, "09:00:00", "10:00:00", true, nil, 11),
	}
	svc := newTestService(repo, &stubLocationRepo{}, now)

	rows, _ := svc.ListMainSchedule(context.Background())
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if !rows[0].LocationValues.IsAll() {
		t.Errorf("fanned-out entry should report the all-locations assignment")
	}
	if rows[1].LocationValues.IsAll() || rows[1].LocationValues.LocationID() != 11 {
		t.Errorf("pinned entry should report location 11")
	}
}

// --- next class ---

func locationCandidate(id uint, day int, start string, repeat bool, selected *time.Time) repositories.LocationScheduleCandidate {
	return repositories.LocationScheduleCandidate{
		Main: models.ScheduleMain{
			ScheduleMainID: id, AccountID: 1, EventID: 5,
			Day: day, StartTime: start, EndTime: "23:00:00",
			IsRepeat: repeat, SelectedDate: selected, IsActive: true,
		},
		Event:              models.Event{EventID: 5, EventName: "Kickboxing", IsActive: true},
		ScheduleLocationID: id * 100,
		LocationID:         10,
	}
}

func TestNextClassPicksSoonestUpcoming(t *testing.T) {
	// Wednesday noon.
	now := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)

	repo := newStubScheduleRepo()
	repo.locCandidates = []repositories.LocationScheduleCandidate{
		locationCandidate(1, 3, "09:00:00", true, nil), // Wednesday morning: already past
		locationCandidate(2, 3, "14:00:00", true, nil), // Wednesday afternoon: soonest
		locationCandidate(3, 4, "08:00:00", true, nil), // Thursday
	}
	svc := newTestService(repo, &stubLocationRepo{}, now)

	next, err := svc.NextClass(context.Background(), 10)
	if err != nil {
		t.Fatalf("NextClass: %v", err)
	}
	if next == nil || next.ScheduleMainID != 2 {
		t.Fatalf("next = %+v, want entry 2", next)
	}
}

func TestNextClassWrapsWeek(t *testing.T) {
	// Saturday 23:30. The only classes are earlier in the week, so the next
	// one is Monday seen across the week boundary.
	now := time.Date(2026, 1, 17, 23, 30, 0, 0, time.UTC)

	repo := newStubScheduleRepo()
	repo.locCandidates = []repositories.LocationScheduleCandidate{
		locationCandidate(1, 1, "09:00:00", true, nil), // Monday
		locationCandidate(2, 5, "09:00:00", true, nil), // Friday, further away forward
	}
	svc := newTestService(repo, &stubLocationRepo{}, now)

	next, err := svc.NextClass(context.Background(), 10)
	if err != nil {
		t.Fatalf("NextClass: %v", err)
	}
	if next == nil || next.ScheduleMainID != 1 {
		t.Fatalf("next = %+v, want the Monday entry", next)
	}
}

func TestNextClassStartingNowCounts(t *testing.T) {
	now := time.Date(2026, 1, 14, 14, 0, 0, 0, time.UTC) // Wednesday 14:00

	repo := newStubScheduleRepo()
	repo.locCandidates = []repositories.LocationScheduleCandidate{
		locationCandidate(1, 3, "14:00:00", true, nil),
		locationCandidate(2, 3, "15:00:00", true, nil),
	}
	svc := newTestService(repo, &stubLocationRepo{}, now)

	next, _ := svc.NextClass(context.Background(), 10)
	if next == nil || next.ScheduleMainID != 1 {
		t.Fatalf("a class starting exactly now should be next, got %+v", next)
	}
}

func TestNextClassEmptyWeek(t *testing.T) {
	now := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)
	repo := newStubScheduleRepo()
	repo.locCandidates = []repositories.LocationScheduleCandidate{
		locationCandidate(1, 1, "09:00:00", false, datePtr(2026, time.February, 2)), // other week
	}
	svc := newTestService(repo, &stubLocationRepo{}, now)

	next, err := svc.NextClass(context.Background(), 10)
	if err != nil {
		t.Fatalf("NextClass: %v", err)
	}
	if next != nil {
		t.Fatalf("next = %+v, want nil", next)
	}
}

// --- class listing ---

func TestListLocationClassScheduleFormatsForDisplay(t *testing.T) {
	now := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)
	repo := newStubScheduleRepo()
	c := locationCandidate(1, 3, "18:30:00", true, nil)
	c.Main.EndTime = "19:30:00"
	repo.locCandidates = []repositories.LocationScheduleCandidate{c}
	svc := newTestService(repo, &stubLocationRepo{}, now)

	rows, err := svc.ListLocationClassSchedule(context.Background(), 10, 1)
	if err != nil {
		t.Fatalf("ListLocationClassSchedule: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].DayValue != "Wednesday" {
		t.Errorf("dayValue = %q, want Wednesday", rows[0].DayValue)
	}
	if rows[0].StartTime != "06:30 PM" || rows[0].EndTime != "07:30 PM" {
		t.Errorf("times = %s-%s, want 06:30 PM-07:30 PM", rows[0].StartTime, rows[0].EndTime)
	}
}

// --- profile assignment ---

func TestAssignProfileValidatesIDs(t *testing.T) {
	repo := newStubScheduleRepo()
	svc := newTestService(repo, &stubLocationRepo{}, time.Now())

	if _, err := svc.AssignProfile(context.Background(), 0, 7, nil); !errors.Is(err, ErrScheduleProfileFailed) {
		t.Errorf("missing scheduleLocationId: err = %v", err)
	}
	if _, err := svc.AssignProfile(context.Background(), 3, 0, nil); !errors.Is(err, ErrScheduleProfileFailed) {
		t.Errorf("missing profileId: err = %v", err)
	}
	if repo.profileUpserts != 0 {
		t.Errorf("upsert reached the repository despite invalid input")
	}
}

func TestAssignProfileReportsCreated(t *testing.T) {
	repo := newStubScheduleRepo()
	repo.upsertCreatedVal = true
	svc := newTestService(repo, &stubLocationRepo{}, time.Now())

	created, err := svc.AssignProfile(context.Background(), 3, 7, uintPtr(9))
	if err != nil {
		t.Fatalf("AssignProfile: %v", err)
	}
	if !created {
		t.Errorf("created = false, want true")
	}
}
