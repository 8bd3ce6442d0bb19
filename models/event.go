package models

// Event is a class or activity an account offers. Events are never hard
// deleted; deactivation sets IsActive=false so historic schedule and
// attendance rows keep a valid reference.
//
// ReservationCount is meaningful only while IsReservation is set, and
// CostToAttend only while IsCostToAttend is set; the service layer forces
// the dependent value to zero otherwise.
type Event struct {
	EventID uint `gorm:"primaryKey" json:"eventId"`
	BaseModel
	AccountID        uint    `gorm:"index;not null" json:"accountId"`
	EventName        string  `gorm:"type:varchar(200);not null" json:"eventName"`
	EventDescription string  `gorm:"type:text" json:"eventDescription"`
	IsReservation    bool    `gorm:"default:false" json:"isReservation"`
	ReservationCount int     `gorm:"default:0" json:"reservationCount"`
	IsCostToAttend   bool    `gorm:"default:false" json:"isCostToAttend"`
	CostToAttend     float64 `gorm:"type:numeric(12,2);default:0" json:"costToAttend"`
	IsActive         bool    `gorm:"default:true;index" json:"isActive"`
}
