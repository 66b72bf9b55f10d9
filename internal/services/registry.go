package services

// ServiceContainer holds all application services.
type ServiceContainer struct {
	RegistrationService RegistrationService
	AuthService         AuthService
	UserService         UserService
	RelationshipService RelationshipService
	AssignmentService   AssignmentService
	VendorLeadService   VendorLeadService
	UploadService       UploadService
}
