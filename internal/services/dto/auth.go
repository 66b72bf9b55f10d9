package dto

import "parentcare_backend/internal/models"

// LoginRequest is the JSON login body. Username is email or phone.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	// Role, when supplied, must match the stored role. A mismatch surfaces
	// as the same generic credential failure.
	Role string `json:"role"`
}

type LoginResponse struct {
	User models.PublicProfile `json:"user"`
}
