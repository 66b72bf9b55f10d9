package handlers

import (
	"net/http"

	"parentcare_backend/internal/models"
	"parentcare_backend/internal/repositories"
	"parentcare_backend/internal/services"
	"parentcare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler covers the administrative registration views and the
// status/delete mutations.
type AdminHandler struct {
	*BaseHandler
	users services.UserService
}

func NewAdminHandler(base *BaseHandler, users services.UserService) *AdminHandler {
	return &AdminHandler{
		BaseHandler: base,
		users:       users,
	}
}

// ListRegistrations handles GET /api/users/registrations.
func (h *AdminHandler) ListRegistrations(c *gin.Context) {
	filter := repositories.RegistrationFilter{
		Role:   models.UserRole(c.Query("role")),
		Status: models.UserStatus(c.Query("status")),
		Limit:  ParseQueryInt(c, "limit", 0),
	}

	users, err := h.users.ListRegistrations(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusOK, "", users)
}

// GetRegistration handles GET /api/users/registrations/:id.
func (h *AdminHandler) GetRegistration(c *gin.Context) {
	user, err := h.users.GetRegistration(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusOK, "", user)
}

// UpdateStatus handles PATCH /api/users/registrations/:id/status.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateUserStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.users.UpdateStatus(c.Param("id"), req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusOK, "Status updated", nil)
}

// DeleteUser handles DELETE /api/users/registrations/:id.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.users.DeleteUser(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusOK, "User deleted", nil)
}

// ListVendorDetails handles GET /api/vendor-details: the full vendor user
// records, any status.
func (h *AdminHandler) ListVendorDetails(c *gin.Context) {
	filter := repositories.RegistrationFilter{
		Role:   models.UserRoleVendor,
		Status: models.UserStatus(c.Query("status")),
		Limit:  ParseQueryInt(c, "limit", 0),
	}

	vendors, err := h.users.ListRegistrations(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusOK, "", vendors)
}

// GetVendorDetail handles GET /api/vendor-details/:id. Only vendor
// records are reachable through this resource.
func (h *AdminHandler) GetVendorDetail(c *gin.Context) {
	vendor, err := h.users.GetVendorDetail(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusOK, "", vendor)
}

// UpdateVendorStatus handles PATCH /api/vendor-details/:id/status.
func (h *AdminHandler) UpdateVendorStatus(c *gin.Context) {
	var req dto.UpdateUserStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.users.UpdateVendorStatus(c.Param("id"), req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusOK, "Status updated", nil)
}

// ListVendors handles GET /api/users/vendors with an optional service
// filter.
func (h *AdminHandler) ListVendors(c *gin.Context) {
	vendors, err := h.users.ListApprovedVendors(c.Query("service"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusOK, "", vendors)
}
