package models

// VendorRegistration is a standalone sales-lead record captured by the
// lightweight pre-registration form. It is not linked to a User.
type VendorRegistration struct {
	BaseModel
	Name               string     `gorm:"not null" json:"name"`
	ContactNumber      string     `gorm:"not null" json:"contact_number"`
	Email              string     `json:"email,omitempty"`
	ServiceType        string     `json:"service_type"`
	ServiceDescription string     `json:"service_description,omitempty"`
	Status             LeadStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
}
