package handlers

import (
	"net/http"

	"parentcare_backend/internal/services"
	"parentcare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	*BaseHandler
	assignments services.AssignmentService
}

func NewAssignmentHandler(base *BaseHandler, assignments services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		BaseHandler: base,
		assignments: assignments,
	}
}

// AssignVendor handles POST /api/users/services/assign.
func (h *AssignmentHandler) AssignVendor(c *gin.Context) {
	var req dto.AssignServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	assignment, err := h.assignments.Assign(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusOK, "Vendor assigned successfully", assignment)
}

// UpdateStatus handles PATCH /api/users/services/:id/status.
func (h *AssignmentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateAssignmentStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.assignments.UpdateStatus(c.Param("id"), req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusOK, "Service status updated successfully", nil)
}

// ListForDaughter handles GET /api/users/daughter/:daughterId/services.
func (h *AssignmentHandler) ListForDaughter(c *gin.Context) {
	assignments, err := h.assignments.ListForDaughter(c.Param("daughterId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusOK, "", assignments)
}
