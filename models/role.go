package models

// Role ids are stable and seeded; RoleOrderID drives display ordering and is
// maintained contiguously by the reorder operation.
type Role struct {
	RoleID uint `gorm:"primaryKey" json:"roleId"`
	BaseModel
	RoleName        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"roleName"`
	RoleDescription string `gorm:"type:text" json:"roleDescription"`
	RoleOrderID     int    `gorm:"index;not null" json:"roleOrderId"`
}

// Well-known role ids.
const (
	RoleSuperAdmin uint = 1
	RoleOwner      uint = 2
	RoleAdmin      uint = 3
	RoleLocalAdmin uint = 4
	RoleInstructor uint = 5
	RoleStaff      uint = 6
)
