package apperrors

import (
	"parentcare_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape for every failed request: a success flag,
// a human-readable message and, for validation failures, a per-field map.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// HandleError translates any error into the standard JSON error response.
// Non-AppError values are wrapped as internal errors so nothing leaks raw.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr,
			"code", string(appErr.Code),
			"path", c.Request.URL.Path,
		)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Details,
	})
}

// AsAppError attempts to interpret err as an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
