package models

import "time"

// Member is a paying customer of a gym. Members are linked to accounts via
// MemberAccount so a member can belong to more than one business.
type Member struct {
	MemberID uint `gorm:"primaryKey" json:"memberId"`
	BaseModel
	MemberPlanID   uint       `gorm:"index;not null" json:"memberPlanId"`
	HomeLocationID uint       `gorm:"index;not null" json:"homeLocationId"`
	FirstName      string     `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName       string     `gorm:"type:varchar(100);not null;index" json:"lastName"`
	Phone          string     `gorm:"type:varchar(30)" json:"phone"`
	Email          string     `gorm:"type:varchar(255)" json:"email"`
	Birthday       *time.Time `gorm:"type:date" json:"birthday"`
	ContactName    string     `gorm:"type:varchar(200)" json:"contactName"`
	ContactPhone   string     `gorm:"type:varchar(30)" json:"contactPhone"`
	SignupDate     *time.Time `gorm:"type:date" json:"signupDate"`
	RenewalDate    *time.Time `gorm:"type:date" json:"renewalDate"`
	IsActive       bool       `gorm:"default:true" json:"isActive"`
}

// MemberAccount joins a member to an account.
type MemberAccount struct {
	MemberAccountID uint `gorm:"primaryKey" json:"memberAccountId"`
	MemberID        uint `gorm:"index;not null" json:"memberId"`
	AccountID       uint `gorm:"index;not null" json:"accountId"`
}

// MembershipPlan is a priced plan members subscribe to.
type MembershipPlan struct {
	PlanID uint `gorm:"primaryKey" json:"planId"`
	BaseModel
	PlanDescription string  `gorm:"type:varchar(255);not null" json:"planDescription"`
	PlanCost        float64 `gorm:"type:numeric(12,2);not null" json:"planCost"`
}

// MembershipAttendance records one member showing up to one event at one
// location.
type MembershipAttendance struct {
	AttendanceID uint `gorm:"primaryKey" json:"attendanceId"`
	BaseModel
	MemberID       uint      `gorm:"index;not null" json:"memberId"`
	LocationID     uint      `gorm:"index;not null" json:"locationId"`
	EventID        uint      `gorm:"index;not null" json:"eventId"`
	AttendanceDate time.Time `gorm:"type:date;not null" json:"attendanceDate"`
}
