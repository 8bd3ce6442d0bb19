package services

import (
	"sort"
	"time"

	"kickconnect.net/models"
	"kickconnect.net/pkg/clocktime"
	"kickconnect.net/repositories"
)

// The occurrence projector decides which schedule candidates are in effect
// for the week containing the reference instant, and shapes them into the
// rows the listing endpoints return.
//
// A repeating entry is always in effect. A one-off entry is in effect only
// during the ISO week of its selected date; an entry with no selected date
// and no repeat flag never surfaces.

func occursThisWeek(main models.ScheduleMain, now time.Time) bool {
	if main.IsRepeat {
		return true
	}
	if main.SelectedDate == nil {
		return false
	}
	selYear, selWeek := main.SelectedDate.ISOWeek()
	nowYear, nowWeek := now.ISOWeek()
	return selYear == nowYear && selWeek == nowWeek
}

func projectOccurrence(main models.ScheduleMain, event models.Event, assignment models.LocationAssignment) models.ScheduleOccurrence {
	return models.ScheduleOccurrence{
		EventID:          event.EventID,
		EventName:        event.EventName,
		EventDescription: event.EventDescription,
		IsReservation:    event.IsReservation,
		ReservationCount: event.ReservationCount,
		IsCostToAttend:   event.IsCostToAttend,
		CostToAttend:     event.CostToAttend,
		Day:              main.Day,
		StartTime:        main.StartTime,
		EndTime:          main.EndTime,
		SelectedDate:     main.SelectedDate,
		IsRepeat:         main.IsRepeat,
		IsActive:         main.IsActive,
		AccountID:        main.AccountID,
		ScheduleMainID:   main.ScheduleMainID,
		LocationValues:   assignment,
	}
}

// projectWeek filters the account-wide candidates down to the current week
// and collapses each entry's fan-out to a single assignment value.
func projectWeek(candidates []repositories.ScheduleCandidate, now time.Time) []models.ScheduleOccurrence {
	rows := make([]models.ScheduleOccurrence, 0, len(candidates))
	for _, c := range candidates {
		if !occursThisWeek(c.Main, now) {
			continue
		}
		var first uint
		if len(c.LocationIDs) > 0 {
			first = c.LocationIDs[0]
		}
		assignment := models.AssignmentForCount(len(c.LocationIDs), first)
		rows = append(rows, projectOccurrence(c.Main, c.Event, assignment))
	}
	sortOccurrences(rows)
	return rows
}

// projectLocationWeek is the location-scoped variant: one row per fan-out
// row at that location, profile assignment attached when present.
func projectLocationWeek(candidates []repositories.LocationScheduleCandidate, now time.Time) []models.LocationOccurrence {
	rows := make([]models.LocationOccurrence, 0, len(candidates))
	for _, c := range candidates {
		if !occursThisWeek(c.Main, now) {
			continue
		}
		row := models.LocationOccurrence{
			ScheduleOccurrence: projectOccurrence(c.Main, c.Event, models.PinnedLocation(c.LocationID)),
			ScheduleLocationID: c.ScheduleLocationID,
		}
		if c.Profile != nil {
			profileID := c.Profile.ProfileID
			row.ProfileID = &profileID
			row.AltProfileID = c.Profile.AltProfileID
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return occurrenceLess(rows[i].ScheduleOccurrence, rows[j].ScheduleOccurrence)
	})
	return rows
}

// projectClassWeek trims location candidates to the display rows mobile
// clients render: day names and 12-hour clock strings.
func projectClassWeek(candidates []repositories.LocationScheduleCandidate, now time.Time) []models.ClassOccurrence {
	inWeek := make([]repositories.LocationScheduleCandidate, 0, len(candidates))
	for _, c := range candidates {
		if occursThisWeek(c.Main, now) {
			inWeek = append(inWeek, c)
		}
	}
	sort.SliceStable(inWeek, func(i, j int) bool {
		return scheduleLess(inWeek[i].Main, inWeek[j].Main)
	})

	rows := make([]models.ClassOccurrence, 0, len(inWeek))
	for _, c := range inWeek {
		rows = append(rows, models.ClassOccurrence{
			EventID:          c.Event.EventID,
			EventName:        c.Event.EventName,
			EventDescription: c.Event.EventDescription,
			DayValue:         time.Weekday(c.Main.Day).String(),
			StartTime:        display12Hour(c.Main.StartTime),
			EndTime:          display12Hour(c.Main.EndTime),
		})
	}
	return rows
}

// nextOccurrence picks the candidate whose start instant comes soonest
// after now, wrapping across the week boundary. Entries not in effect this
// week are skipped. Returns nil when nothing qualifies.
func nextOccurrence(candidates []repositories.LocationScheduleCandidate, now time.Time) *models.LocationOccurrence {
	nowMinutes := weekdayMinutes(int(now.Weekday()), now.Hour()*60+now.Minute())

	var best *repositories.LocationScheduleCandidate
	bestWait := 0
	for i := range candidates {
		c := candidates[i]
		if !occursThisWeek(c.Main, now) {
			continue
		}
		start, err := clocktime.ParseStored(c.Main.StartTime)
		if err != nil {
			continue
		}
		wait := minutesUntil(nowMinutes, weekdayMinutes(c.Main.Day, start.Minutes()))
		if best == nil || wait < bestWait {
			best = &candidates[i]
			bestWait = wait
		}
	}
	if best == nil {
		return nil
	}

	row := models.LocationOccurrence{
		ScheduleOccurrence: projectOccurrence(best.Main, best.Event, models.PinnedLocation(best.LocationID)),
		ScheduleLocationID: best.ScheduleLocationID,
	}
	if best.Profile != nil {
		profileID := best.Profile.ProfileID
		row.ProfileID = &profileID
		row.AltProfileID = best.Profile.AltProfileID
	}
	return &row
}

const minutesPerWeek = 7 * 24 * 60

func weekdayMinutes(day, minuteOfDay int) int {
	return day*24*60 + minuteOfDay
}

// minutesUntil is the forward distance from one minute-of-week to another,
// wrapping Saturday night into Sunday morning. A class starting exactly now
// counts as next, not as a week away.
func minutesUntil(from, to int) int {
	return ((to - from) % minutesPerWeek + minutesPerWeek) % minutesPerWeek
}

func scheduleLess(a, b models.ScheduleMain) bool {
	if a.Day != b.Day {
		return a.Day < b.Day
	}
	return a.StartTime < b.StartTime
}

func occurrenceLess(a, b models.ScheduleOccurrence) bool {
	if a.Day != b.Day {
		return a.Day < b.Day
	}
	return a.StartTime < b.StartTime
}

func sortOccurrences(rows []models.ScheduleOccurrence) {
	sort.SliceStable(rows, func(i, j int) bool { return occurrenceLess(rows[i], rows[j]) })
}

func display12Hour(stored string) string {
	clock, err := clocktime.ParseStored(stored)
	if err != nil {
		return stored
	}
	return clock.Format12()
}
