package services

import (
	"context"

	"parentcare_backend/internal/auth"
	"parentcare_backend/internal/logger"
	"parentcare_backend/internal/models"
	"parentcare_backend/internal/repositories"
	"parentcare_backend/internal/services/dto"
	"parentcare_backend/pkg/apperrors"
)

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Login looks the user up by email or phone and checks the credential.
// A missing user, an unset password hash, a wrong password and a role
// mismatch all surface the same generic failure so account existence
// cannot be probed.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmailOrPhone(req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrLoginFailed
		}
		return nil, apperrors.InternalError(err)
	}

	if user.PasswordHash == nil {
		return nil, apperrors.ErrLoginFailed
	}

	if !auth.CheckPassword(req.Password, *user.PasswordHash) {
		return nil, apperrors.ErrLoginFailed
	}

	if req.Role != "" && models.UserRole(req.Role) != user.Role {
		// The distinction is logged but never exposed to the client.
		logger.CtxWarn(ctx, "login role mismatch",
			"user_id", user.ID,
			"expected_role", req.Role,
			"actual_role", string(user.Role),
		)
		return nil, apperrors.ErrLoginFailed
	}

	// Explicit allow-list: only pending and approved accounts may log in.
	switch user.Status {
	case models.UserStatusPending, models.UserStatusApproved:
	case models.UserStatusRejected:
		return nil, apperrors.ErrAccountRejected
	default:
		return nil, apperrors.ErrLoginFailed
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID, "role", string(user.Role))

	return &dto.LoginResponse{User: user.Public()}, nil
}
