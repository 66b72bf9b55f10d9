package dto

import "parentcare_backend/internal/models"

// VendorLeadRequest is the lightweight pre-registration callback form.
type VendorLeadRequest struct {
	Name               string `json:"name" validate:"required,min=2"`
	ContactNumber      string `json:"contact_number" validate:"required,contact_number"`
	Email              string `json:"email" validate:"omitempty,email"`
	ServiceType        string `json:"service_type" validate:"required"`
	ServiceDescription string `json:"service_description"`
}

// UpdateLeadStatusRequest moves a lead through its pipeline.
type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// LeadListResponse pages through captured leads.
type LeadListResponse struct {
	Leads []models.VendorRegistration `json:"leads"`
	Total int64                       `json:"total"`
}
