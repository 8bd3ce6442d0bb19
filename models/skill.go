package models

// Skill is a taggable discipline instructors can list on their profile.
type Skill struct {
	SkillID uint `gorm:"primaryKey" json:"skillId"`
	BaseModel
	SkillName        string `gorm:"type:varchar(200);not null" json:"skillName"`
	SkillDescription string `gorm:"type:text" json:"skillDescription"`
}
