package dto

import "parentcare_backend/internal/models"

// Registration requests form a closed set of role-specific variants so the
// required fields of each role are fixed at compile time instead of being
// probed at runtime.

// ParentRegisterRequest carries the multipart fields of a parent signup.
type ParentRegisterRequest struct {
	Name              string `form:"name" json:"name" validate:"required,min=2"`
	Phone             string `form:"phone" json:"phone" validate:"required,indian_mobile"`
	Email             string `form:"email" json:"email" validate:"required,email"`
	Password          string `form:"password" json:"password" validate:"required,min=8"`
	Address           string `form:"address" json:"address" validate:"required,min=10"`
	Aadhar            string `form:"aadhar" json:"aadhar" validate:"required,aadhar"`
	VoterID           string `form:"voter_id" json:"voter_id"`
	Pan               string `form:"pan" json:"pan" validate:"omitempty,pan"`
	MedicalConditions string `form:"medical_conditions" json:"medical_conditions"`
	EmergencyContact  string `form:"emergency_contact" json:"emergency_contact"`
}

// DaughterRegisterRequest carries the multipart fields of a daughter signup.
type DaughterRegisterRequest struct {
	Name     string `form:"name" json:"name" validate:"required,min=2"`
	Phone    string `form:"phone" json:"phone" validate:"required,indian_mobile"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=8"`
	Address  string `form:"address" json:"address" validate:"required,min=10"`
	Aadhar   string `form:"aadhar" json:"aadhar" validate:"omitempty,aadhar"`
	VoterID  string `form:"voter_id" json:"voter_id"`
	Pan      string `form:"pan" json:"pan" validate:"required,pan"`
	// ParentName is the cared-for relative's name, free text.
	ParentName   string `form:"parent_name" json:"parent_name" validate:"required"`
	Relationship string `form:"relationship" json:"relationship" validate:"required,relationship"`
}

// VendorRegisterRequest carries the multipart fields of a vendor signup.
// Services arrives on the wire as a JSON-encoded array of strings.
type VendorRegisterRequest struct {
	Name               string   `form:"name" json:"name" validate:"required,min=2"`
	Phone              string   `form:"phone" json:"phone" validate:"required,indian_mobile"`
	Email              string   `form:"email" json:"email" validate:"required,email"`
	Password           string   `form:"password" json:"password" validate:"required,min=8"`
	Address            string   `form:"address" json:"address" validate:"required,min=10"`
	Aadhar             string   `form:"aadhar" json:"aadhar" validate:"omitempty,aadhar"`
	VoterID            string   `form:"voter_id" json:"voter_id"`
	Pan                string   `form:"pan" json:"pan" validate:"omitempty,pan"`
	BusinessName       string   `form:"business_name" json:"business_name"`
	Services           []string `json:"services" validate:"required,min=1"`
	ServiceDescription string   `form:"service_description" json:"service_description"`
	GstNumber          string   `form:"gst_number" json:"gst_number"`
}

// StoredFiles holds the web paths of the uploads persisted before the
// registration workflow starts. Empty string means the file was not sent.
type StoredFiles struct {
	PhotoPath       string
	IdentityDocPath string
}

// Paths lists the non-empty stored paths, for cleanup.
func (f StoredFiles) Paths() []string {
	var paths []string
	if f.PhotoPath != "" {
		paths = append(paths, f.PhotoPath)
	}
	if f.IdentityDocPath != "" {
		paths = append(paths, f.IdentityDocPath)
	}
	return paths
}

// NewIdentity is the projection returned after a successful registration.
type NewIdentity struct {
	ID     string            `json:"id"`
	Role   models.UserRole   `json:"role"`
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Phone  string            `json:"phone"`
	Status models.UserStatus `json:"status"`
}
