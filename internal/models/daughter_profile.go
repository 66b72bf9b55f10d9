package models

type DaughterProfile struct {
	BaseModel
	UserID string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	// ParentName is the name of the relative being cared for, free text.
	// It is not a reference to another user.
	ParentName   string       `gorm:"not null" json:"parent_name"`
	Relationship Relationship `gorm:"type:varchar(20);not null" json:"relationship"`
}
