package models

// Read-model rows for the user directory endpoints.

// UserSummary is one row of the user listing: the user, its account, the
// joined role names and the optional instructor profile fields.
type UserSummary struct {
	User
	AccountName        string `json:"accountName"`
	AccountCode        string `json:"accountCode"`
	RoleNames          string `json:"roleNames"` // "Owner, Instructor"
	RoleIDs            []uint `json:"roleId"`
	ProfileDescription string `json:"description,omitempty"`
	ProfileSkills      string `json:"skills,omitempty"`
	ProfileURL         string `json:"url,omitempty"`
}

// UserDetail extends the summary with the instructor's location links.
type UserDetail struct {
	UserSummary
	ProfileID       *uint  `json:"profileId"`
	PrimaryLocation *uint  `json:"primaryLocation"`
	AltLocations    []uint `json:"altLocations"`
}

// InstructorSummary is the trimmed row returned when browsing staff by role
// or by role and location.
type InstructorSummary struct {
	UserID      uint   `json:"userId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	PhotoURL    string `json:"photoURL"`
	IsActive    int    `json:"isActive"`
	Skills      string `json:"skills"`
	Description string `json:"description"`
	URL         string `json:"url"`
}
