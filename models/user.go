package models

// User is a staff login under an account. IsActive uses the original wire
// values: 1 active, 0 inactive, -1 deactivated-by-admin.
type User struct {
	UserID uint `gorm:"primaryKey" json:"userId"`
	BaseModel
	AccountID     uint   `gorm:"index;not null" json:"accountId"`
	Name          string `gorm:"type:varchar(200);not null" json:"name"`
	Email         string `gorm:"type:varchar(255);index;not null" json:"email"`
	Phone         string `gorm:"type:varchar(30)" json:"phone"`
	Phone2        string `gorm:"type:varchar(30)" json:"phone2"`
	Address       string `gorm:"type:varchar(255)" json:"address"`
	City          string `gorm:"type:varchar(100)" json:"city"`
	State         string `gorm:"type:varchar(50)" json:"state"`
	Zip           string `gorm:"type:varchar(10)" json:"zip"`
	Password      string `gorm:"type:varchar(255);not null" json:"-"`
	PhotoURL      string `gorm:"type:varchar(500)" json:"photoURL"`
	IsActive      int    `gorm:"default:1;index" json:"isActive"`
	ResetPassword bool   `gorm:"default:false" json:"resetPassword"`

	Roles   []Role   `gorm:"many2many:user_roles;foreignKey:UserID;joinForeignKey:UserID;References:RoleID;joinReferences:RoleID" json:"roles,omitempty"`
	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

// UserRole is the explicit join row; role reassignment deletes and reinserts
// the whole set for a user.
type UserRole struct {
	UserRoleID uint `gorm:"primaryKey" json:"userRoleId"`
	UserID     uint `gorm:"index;not null" json:"userId"`
	RoleID     uint `gorm:"index;not null" json:"roleId"`
}

// Profile holds instructor-facing data. A profile row is created empty the
// moment a user gains the Instructor role.
type Profile struct {
	ProfileID uint `gorm:"primaryKey" json:"profileId"`
	BaseModel
	UserID      uint   `gorm:"uniqueIndex;not null" json:"userId"`
	Description string `gorm:"type:text" json:"description"`
	Skills      string `gorm:"type:text" json:"skills"` // comma separated skill names
	URL         string `gorm:"type:varchar(500)" json:"url"`

	Locations []ProfileLocation `gorm:"foreignKey:ProfileID" json:"-"`
}

// ProfileLocation links an instructor profile to the locations they teach
// at. Exactly one row per profile has IsHome set.
type ProfileLocation struct {
	ProfileLocationID uint `gorm:"primaryKey" json:"profileLocationId"`
	ProfileID         uint `gorm:"index;not null" json:"profileId"`
	LocationID        uint `gorm:"index;not null" json:"locationId"`
	IsHome            bool `gorm:"default:false" json:"isHome"`
}
