package dto

// UpdateUserStatusRequest is the admin status PATCH body.
type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AddParentRequest links an existing parent to a daughter.
type AddParentRequest struct {
	ParentID string `json:"parent_id" validate:"required"`
}

// AssignServiceRequest assigns a vendor to a client's service. All ids
// refer to existing user records; vendor_id may be omitted to record a
// still-unstaffed service.
type AssignServiceRequest struct {
	ClientID    string `json:"client_id" validate:"required"`
	DaughterID  string `json:"daughter_id" validate:"required"`
	VendorID    string `json:"vendor_id"`
	ServiceType string `json:"service_type" validate:"required"`
}

// UpdateAssignmentStatusRequest is the service assignment status PATCH
// body.
type UpdateAssignmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
