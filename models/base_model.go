package models

import "time"

// BaseModel carries the audit columns shared by every table. CreatedBy and
// UpdatedBy hold the operation name that touched the row ("API add-schedule"
// etc.), not a user id. Each model declares its own primary key so that the
// key keeps its wire name (accountId, scheduleMainId, ...). Row lifecycle is
// managed with per-table active flags; deletes that do happen (schedule
// location fan-out, user roles) are real deletes.
type BaseModel struct {
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	CreatedBy string    `gorm:"type:varchar(100)" json:"-"`
	UpdatedBy string    `gorm:"type:varchar(100)" json:"-"`
}
