package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"

	"parentcare_backend/internal/logger"
	"parentcare_backend/internal/models"
	"parentcare_backend/internal/services"
	"parentcare_backend/internal/services/dto"
	"parentcare_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	*BaseHandler
	registration services.RegistrationService
	uploads      services.UploadService
}

func NewRegistrationHandler(
	base *BaseHandler,
	registration services.RegistrationService,
	uploads services.UploadService,
) *RegistrationHandler {
	return &RegistrationHandler{
		BaseHandler:  base,
		registration: registration,
		uploads:      uploads,
	}
}

// Register handles POST /api/auth/register. The multipart role field picks
// the variant; files are stored first so their paths are known before the
// workflow starts, and the workflow removes them on any failure.
func (h *RegistrationHandler) Register(c *gin.Context) {
	role := models.UserRole(c.PostForm("role"))
	if !models.ValidRole(role) {
		apperrors.HandleError(c, apperrors.ErrInvalidRole)
		return
	}

	switch role {
	case models.UserRoleParent:
		h.registerParent(c)
	case models.UserRoleDaughter:
		h.registerDaughter(c)
	case models.UserRoleVendor:
		h.RegisterVendor(c)
	}
}

func (h *RegistrationHandler) registerParent(c *gin.Context) {
	var req dto.ParentRegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to bind registration form", err)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid registration form"))
		return
	}

	files, ok := h.storeFiles(c, false, false)
	if !ok {
		return
	}

	identity, err := h.registration.RegisterParent(c.Request.Context(), &req, files)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusCreated, "Registration successful", identity)
}

func (h *RegistrationHandler) registerDaughter(c *gin.Context) {
	var req dto.DaughterRegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to bind registration form", err)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid registration form"))
		return
	}

	files, ok := h.storeFiles(c, false, false)
	if !ok {
		return
	}

	identity, err := h.registration.RegisterDaughter(c.Request.Context(), &req, files)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusCreated, "Registration successful", identity)
}

// RegisterVendor also serves POST /api/vendor-details/register directly.
// Vendor uploads land under the vendor subdirectory.
func (h *RegistrationHandler) RegisterVendor(c *gin.Context) {
	var req dto.VendorRegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to bind registration form", err)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid registration form"))
		return
	}
	req.Services = parseServices(c.PostForm("services"))

	files, ok := h.storeFiles(c, true, true)
	if !ok {
		return
	}

	identity, err := h.registration.RegisterVendor(c.Request.Context(), &req, files)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusCreated, "Registration successful", identity)
}

// storeFiles persists the photo and, when wanted, the identity document.
// MIME and size rejection happens here, before any database work.
func (h *RegistrationHandler) storeFiles(c *gin.Context, withIdentityDoc, vendor bool) (dto.StoredFiles, bool) {
	photo := formFile(c, "photo")

	var identityDoc *multipart.FileHeader
	if withIdentityDoc {
		identityDoc = formFile(c, "identity_doc")
	}

	files, err := h.uploads.StoreRegistrationFiles(c.Request.Context(), photo, identityDoc, vendor)
	if err != nil {
		h.HandleServiceError(c, err)
		return dto.StoredFiles{}, false
	}
	return files, true
}

func formFile(c *gin.Context, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return fh
}

// parseServices decodes the services multipart field, which arrives as a
// JSON-encoded array. A plain comma-separated list is accepted as a
// fallback.
func parseServices(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var services []string
	if err := json.Unmarshal([]byte(raw), &services); err == nil {
		return services
	}

	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			services = append(services, s)
		}
	}
	return services
}
