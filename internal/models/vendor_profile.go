package models

import "github.com/lib/pq"

type VendorProfile struct {
	BaseModel
	UserID             string         `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	BusinessName       string         `json:"business_name"`
	Services           pq.StringArray `gorm:"type:text[]" json:"services"`
	ServiceDescription string         `json:"service_description,omitempty"`
	GstNumber          string         `json:"gst_number,omitempty"`
	IdentityDocPath    string         `gorm:"not null" json:"identity_doc_path"`
}
