package models

// Location is one physical site of an account.
type Location struct {
	LocationID uint `gorm:"primaryKey" json:"locationId"`
	BaseModel
	AccountID       uint   `gorm:"index;not null" json:"accountId"`
	LocationName    string `gorm:"type:varchar(200);not null" json:"locationName"`
	LocationAddress string `gorm:"type:varchar(255)" json:"locationAddress"`
	LocationCity    string `gorm:"type:varchar(100)" json:"locationCity"`
	LocationState   string `gorm:"type:varchar(50)" json:"locationState"`
	LocationZip     string `gorm:"type:varchar(10)" json:"locationZip"`
	LocationPhone   string `gorm:"type:varchar(30)" json:"locationPhone"`
	LocationEmail   string `gorm:"type:varchar(255)" json:"locationEmail"`
	IsActive        bool   `gorm:"default:true;index" json:"isActive"`
}
