package models

// ServiceAssignment pairs a care recipient with the vendor delivering a
// given service type, on behalf of the coordinating daughter. One row per
// (client, daughter, service type); re-assigning swaps the vendor and
// resets the status to Active.
type ServiceAssignment struct {
	BaseModel
	ClientID    string           `gorm:"type:uuid;not null;uniqueIndex:idx_service_assignment" json:"client_id"`
	DaughterID  string           `gorm:"type:uuid;not null;uniqueIndex:idx_service_assignment" json:"daughter_id"`
	VendorID    *string          `gorm:"type:uuid" json:"vendor_id,omitempty"`
	ServiceType string           `gorm:"not null;uniqueIndex:idx_service_assignment" json:"service_type"`
	Status      AssignmentStatus `gorm:"type:varchar(20);default:'Active'" json:"status"`

	Client   *User `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Daughter *User `gorm:"foreignKey:DaughterID" json:"daughter,omitempty"`
	Vendor   *User `gorm:"foreignKey:VendorID;constraint:OnDelete:SET NULL" json:"vendor,omitempty"`
}
