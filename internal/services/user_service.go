package services

import (
	"parentcare_backend/internal/models"
	"parentcare_backend/internal/repositories"
	"parentcare_backend/pkg/apperrors"
)

// UserService covers the administrative reads and mutations over
// registered users.
type UserService interface {
	ListRegistrations(filter repositories.RegistrationFilter) ([]models.User, error)
	GetRegistration(id string) (*models.User, error)
	GetVendorDetail(id string) (*models.User, error)
	UpdateStatus(id string, status string) error
	UpdateVendorStatus(id string, status string) error
	DeleteUser(id string) error
	ListApprovedVendors(service string) ([]models.User, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) ListRegistrations(filter repositories.RegistrationFilter) ([]models.User, error) {
	if filter.Role != "" && !models.ValidRole(filter.Role) {
		return nil, apperrors.ErrInvalidRole
	}
	if filter.Status != "" && !models.ValidUserStatus(filter.Status) {
		return nil, apperrors.ErrInvalidStatus
	}

	users, err := s.userRepo.FindRegistrations(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

func (s *UserServiceImpl) GetRegistration(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// GetVendorDetail is GetRegistration scoped to vendor records. A user of
// any other role 404s so the vendor-details resource cannot read arbitrary
// accounts.
func (s *UserServiceImpl) GetVendorDetail(id string) (*models.User, error) {
	user, err := s.GetRegistration(id)
	if err != nil {
		return nil, err
	}
	if user.Role != models.UserRoleVendor {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateStatus(id string, status string) error {
	if !models.ValidUserStatus(models.UserStatus(status)) {
		return apperrors.ErrInvalidStatus
	}

	err := s.userRepo.UpdateStatus(id, models.UserStatus(status))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// UpdateVendorStatus is UpdateStatus scoped to vendor records.
func (s *UserServiceImpl) UpdateVendorStatus(id string, status string) error {
	if !models.ValidUserStatus(models.UserStatus(status)) {
		return apperrors.ErrInvalidStatus
	}
	if _, err := s.GetVendorDetail(id); err != nil {
		return err
	}
	return s.UpdateStatus(id, status)
}

func (s *UserServiceImpl) DeleteUser(id string) error {
	err := s.userRepo.Delete(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) ListApprovedVendors(service string) ([]models.User, error) {
	vendors, err := s.userRepo.FindApprovedVendors(service)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return vendors, nil
}
