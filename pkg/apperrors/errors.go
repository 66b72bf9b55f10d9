package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a class of application error.
type ErrorCode string

// AppError is the application-level error carried from services up to the
// transport layer. HTTPCode and the wrapped cause are never serialized.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithDetails returns a copy carrying structured details (e.g. a field-error
// map). A copy so the predefined errors stay immutable.
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// Is / As re-export the stdlib helpers so callers need a single import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors.
var (
	// Authentication. ErrLoginFailed is deliberately generic: a missing user,
	// a wrong password, a role mismatch and an unset password all surface the
	// exact same response so account existence cannot be probed.
	ErrLoginFailed     = New(CodeLoginFailed, "Login failed. Please try again.", http.StatusUnauthorized)
	ErrAccountRejected = New(CodeAccountRejected, "Your account has been rejected. Please contact support.", http.StatusForbidden)

	// Registration
	ErrValidationFailed       = New(CodeValidationFailed, "Validation errors", http.StatusBadRequest)
	ErrEmailAlreadyRegistered = New(CodeEmailAlreadyRegistered, "Email already registered", http.StatusBadRequest)
	ErrPhoneAlreadyRegistered = New(CodePhoneAlreadyRegistered, "Phone number already registered", http.StatusBadRequest)
	ErrVendorIdentityMissing  = New(CodeVendorIdentityRequired, "At least one identity document (Aadhar/Voter ID/PAN) and an identity document file are required for vendors", http.StatusBadRequest)
	ErrInvalidRole            = New(CodeInvalidRole, "Invalid role", http.StatusBadRequest)
	ErrInvalidStatus          = New(CodeInvalidStatus, "Invalid status value", http.StatusBadRequest)

	// Uploads
	ErrFileTooLarge    = New(CodeFileTooLarge, "File exceeds the maximum allowed size", http.StatusBadRequest)
	ErrInvalidFileType = New(CodeInvalidFileType, "File type is not allowed", http.StatusBadRequest)

	// Resources
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrVendorNotFound     = New(CodeVendorNotFound, "Vendor registration not found", http.StatusNotFound)
	ErrRelationshipExists = New(CodeRelationshipExists, "This parent is already assigned to you", http.StatusBadRequest)
	ErrAssignmentNotFound = New(CodeAssignmentNotFound, "Service assignment not found", http.StatusNotFound)

	// System. The client sees only the generic message; the cause is logged.
	ErrRegistrationFailed = New(CodeStorageError, "Registration failed. Please try again.", http.StatusInternalServerError)
)

// ValidationError attaches a field→message map to ErrValidationFailed.
func ValidationError(fieldErrors interface{}) *AppError {
	return ErrValidationFailed.WithDetails(fieldErrors)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeUserNotFound, message, http.StatusNotFound)
}
