package apperrors

// Error codes grouped by domain.
const (
	// Authentication
	CodeLoginFailed     ErrorCode = "LOGIN_FAILED"
	CodeAccountRejected ErrorCode = "ACCOUNT_REJECTED"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidRole      ErrorCode = "INVALID_ROLE"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"

	// Registration / uniqueness
	CodeEmailAlreadyRegistered ErrorCode = "EMAIL_ALREADY_REGISTERED"
	CodePhoneAlreadyRegistered ErrorCode = "PHONE_ALREADY_REGISTERED"
	CodeVendorIdentityRequired ErrorCode = "VENDOR_IDENTITY_REQUIRED"

	// File uploads
	CodeFileTooLarge    ErrorCode = "FILE_TOO_LARGE"
	CodeInvalidFileType ErrorCode = "INVALID_FILE_TYPE"

	// Resources
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeVendorNotFound     ErrorCode = "VENDOR_NOT_FOUND"
	CodeRelationshipExists ErrorCode = "RELATIONSHIP_EXISTS"
	CodeAssignmentNotFound ErrorCode = "ASSIGNMENT_NOT_FOUND"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeStorageError  ErrorCode = "STORAGE_ERROR"
)
