package handlers

import (
	"net/http"

	"parentcare_backend/internal/services"
	"parentcare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RelationshipHandler struct {
	*BaseHandler
	relationships services.RelationshipService
}

func NewRelationshipHandler(base *BaseHandler, relationships services.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{
		BaseHandler:   base,
		relationships: relationships,
	}
}

// AddParent handles POST /api/users/daughter/:daughterId/add-parent.
func (h *RelationshipHandler) AddParent(c *gin.Context) {
	var req dto.AddParentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.relationships.AddParent(c.Param("daughterId"), req.ParentID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusCreated, "Parent assigned", nil)
}

// ListParents handles GET /api/users/daughter/:daughterId/parents. The
// daughter id always comes from the request path.
func (h *RelationshipHandler) ListParents(c *gin.Context) {
	parents, err := h.relationships.ListParents(c.Param("daughterId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusOK, "", parents)
}
