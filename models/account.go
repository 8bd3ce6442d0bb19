package models

// Account is one paying business (a gym or studio chain). Its AccountCode is
// the opaque identifier handed out in provisioning emails.
type Account struct {
	AccountID uint `gorm:"primaryKey" json:"accountId"`
	BaseModel
	AccountCode    string `gorm:"type:varchar(36);uniqueIndex;not null" json:"accountCode"`
	AccountName    string `gorm:"type:varchar(200);not null" json:"accountName"`
	AccountPhone   string `gorm:"type:varchar(30)" json:"accountPhone"`
	AccountEmail   string `gorm:"type:varchar(255);index" json:"accountEmail"`
	AccountAddress string `gorm:"type:varchar(255)" json:"accountAddress"`
	AccountCity    string `gorm:"type:varchar(100)" json:"accountCity"`
	AccountState   string `gorm:"type:varchar(50)" json:"accountState"`
	AccountZip     string `gorm:"type:varchar(10)" json:"accountZip"`
	IsSuperAdmin   bool   `gorm:"default:false" json:"isSuperAdmin"`

	Locations []Location `gorm:"foreignKey:AccountID" json:"-"`
	Events    []Event    `gorm:"foreignKey:AccountID" json:"-"`
}
