package models

type ParentProfile struct {
	BaseModel
	UserID            string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	MedicalConditions string `json:"medical_conditions,omitempty"`
	EmergencyContact  string `json:"emergency_contact,omitempty"`
}
