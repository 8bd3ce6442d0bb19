package models

// Reference tables backing dropdowns and address autofill. Seeded once,
// read-only at runtime.

// Duration is a selectable class length.
type Duration struct {
	DurationValue int    `gorm:"primaryKey" json:"durationValue"` // minutes
	DurationText  string `gorm:"type:varchar(50);not null" json:"durationText"`
}

// ReservationCount is a selectable class-capacity option.
type ReservationCount struct {
	ReservationCountID    uint `gorm:"primaryKey" json:"reservationCountId"`
	ReservationCountValue int  `gorm:"not null" json:"reservationCountValue"`
}

// Day maps a day number to its display name.
type Day struct {
	DayNumber int    `gorm:"primaryKey" json:"dayNumber"` // 0=Sunday .. 6=Saturday
	DayValue  string `gorm:"type:varchar(10);not null" json:"dayValue"`
}

// ZipCode is one row of the city/state lookup table.
type ZipCode struct {
	ZipCodeID uint   `gorm:"primaryKey" json:"-"`
	Zip       string `gorm:"type:varchar(10);index;not null" json:"zip"`
	City      string `gorm:"type:varchar(100);not null" json:"city"`
	StateCode string `gorm:"type:varchar(2);not null" json:"stateCode"`
	County    string `gorm:"type:varchar(100)" json:"county"`
}
