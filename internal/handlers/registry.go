package handlers

// AppHandlers holds all HTTP handlers.
type AppHandlers struct {
	RegistrationHandler *RegistrationHandler
	AuthHandler         *AuthHandler
	AdminHandler        *AdminHandler
	RelationshipHandler *RelationshipHandler
	AssignmentHandler   *AssignmentHandler
	VendorLeadHandler   *VendorLeadHandler
}
