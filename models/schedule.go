package models

import (
	"time"
)

// ScheduleMain is one recurring or one-off time slot of an event.
//
// When IsRepeat is true the entry recurs every week on Day and SelectedDate
// is advisory only. When IsRepeat is false, SelectedDate is authoritative:
// the entry is in effect only during the ISO week containing that date.
type ScheduleMain struct {
	ScheduleMainID uint `gorm:"primaryKey" json:"scheduleMainId"`
	BaseModel
	AccountID    uint       `gorm:"index;not null" json:"accountId"`
	EventID      uint       `gorm:"index;not null" json:"eventId"`
	Day          int        `gorm:"not null" json:"day"` // 0=Sunday .. 6=Saturday
	StartTime    string     `gorm:"type:varchar(8);not null" json:"startTime"` // "HH:MM:SS"
	EndTime      string     `gorm:"type:varchar(8);not null" json:"endTime"`   // "HH:MM:SS"
	SelectedDate *time.Time `gorm:"type:date" json:"selectedDate"`
	IsRepeat     bool       `gorm:"default:false" json:"isRepeat"`
	IsActive     bool       `gorm:"default:true" json:"isActive"`

	Event     Event              `gorm:"foreignKey:EventID;references:EventID" json:"-"`
	Locations []ScheduleLocation `gorm:"foreignKey:ScheduleMainID" json:"-"`
}

// ScheduleLocation pins one ScheduleMain to one Location. A schedule entry
// owns either exactly one row (pinned) or one row per location of the
// account (fanned out). The set is always replaced wholesale, never patched.
type ScheduleLocation struct {
	ScheduleLocationID uint `gorm:"primaryKey" json:"scheduleLocationId"`
	BaseModel
	ScheduleMainID uint `gorm:"index;not null" json:"scheduleMainId"`
	LocationID     uint `gorm:"index;not null" json:"locationId"`
	IsActive       bool `gorm:"default:true" json:"isActive"`
}

// ScheduleProfile assigns a primary instructor profile, and optionally an
// alternate, to one ScheduleLocation. ScheduleLocationID is the natural key;
// writes upsert against it.
type ScheduleProfile struct {
	ScheduleProfileID uint `gorm:"primaryKey" json:"scheduleProfileId"`
	BaseModel
	ScheduleLocationID uint  `gorm:"uniqueIndex;not null" json:"scheduleLocationId"`
	ProfileID          uint  `gorm:"not null" json:"profileId"`
	AltProfileID       *uint `json:"altProfileId"`
}
