package models

import "time"

// Read-model rows produced by the occurrence projector. Field names mirror
// the JSON the scheduling frontend already consumes.

// ScheduleOccurrence is one row of the account-wide weekly listing. A
// schedule entry fanned out to several locations collapses to one row whose
// LocationValues reports the all-locations assignment.
type ScheduleOccurrence struct {
	EventID          uint               `json:"eventId"`
	EventName        string             `json:"eventName"`
	EventDescription string             `json:"eventDescription"`
	IsReservation    bool               `json:"isReservation"`
	ReservationCount int                `json:"reservationCount"`
	IsCostToAttend   bool               `json:"isCostToAttend"`
	CostToAttend     float64            `json:"costToAttend"`
	Day              int                `json:"day"`
	StartTime        string             `json:"startTime"`
	EndTime          string             `json:"endTime"`
	SelectedDate     *time.Time         `json:"selectedDate"`
	IsRepeat         bool               `json:"isRepeat"`
	IsActive         bool               `json:"isActive"`
	AccountID        uint               `json:"accountId"`
	ScheduleMainID   uint               `json:"scheduleMainId"`
	LocationValues   LocationAssignment `json:"locationValues"`
}

// LocationOccurrence is the location-scoped variant carrying the profile
// assignment for that location's row. Profile ids are absent when no
// instructor has been assigned.
type LocationOccurrence struct {
	ScheduleOccurrence
	ScheduleLocationID uint  `json:"scheduleLocationId"`
	ProfileID          *uint `json:"profileId"`
	AltProfileID       *uint `json:"altProfileId"`
}

// ClassOccurrence is the trimmed projection mobile clients render: display
// day name and 12-hour clock strings.
type ClassOccurrence struct {
	EventID          uint   `json:"eventId"`
	EventName        string `json:"eventName"`
	EventDescription string `json:"eventDescription"`
	DayValue         string `json:"dayValue"`
	StartTime        string `json:"startTime"` // "02:30 PM"
	EndTime          string `json:"endTime"`
}
