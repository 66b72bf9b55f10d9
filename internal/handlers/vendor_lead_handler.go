package handlers

import (
	"net/http"

	"parentcare_backend/internal/models"
	"parentcare_backend/internal/repositories"
	"parentcare_backend/internal/services"
	"parentcare_backend/internal/services/dto"
	"parentcare_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// VendorLeadHandler serves the lightweight vendor pre-registration form and
// its admin pipeline.
type VendorLeadHandler struct {
	*BaseHandler
	leads services.VendorLeadService
}

func NewVendorLeadHandler(base *BaseHandler, leads services.VendorLeadService) *VendorLeadHandler {
	return &VendorLeadHandler{
		BaseHandler: base,
		leads:       leads,
	}
}

// Capture handles POST /api/vendors/register.
func (h *VendorLeadHandler) Capture(c *gin.Context) {
	var req dto.VendorLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	lead, err := h.leads.Capture(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusCreated, "Registration received. We will contact you shortly.", lead)
}

// List handles GET /api/vendors/registrations.
func (h *VendorLeadHandler) List(c *gin.Context) {
	filter := repositories.LeadFilter{
		Status: models.LeadStatus(c.Query("status")),
		Limit:  ParseQueryInt(c, "limit", 50),
		Offset: ParseQueryInt(c, "offset", 0),
	}

	resp, err := h.leads.List(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusOK, "", resp)
}

// Get handles GET /api/vendors/registrations/:id.
func (h *VendorLeadHandler) Get(c *gin.Context) {
	lead, err := h.leads.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusOK, "", lead)
}

// UpdateStatus handles PUT /api/vendors/registrations/:id/status.
func (h *VendorLeadHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateLeadStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.leads.UpdateStatus(c.Param("id"), req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusOK, "Status updated", nil)
}

// Delete handles DELETE /api/vendors/registrations/:id.
func (h *VendorLeadHandler) Delete(c *gin.Context) {
	if err := h.leads.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusOK, "Registration deleted", nil)
}
