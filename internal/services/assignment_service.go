package services

import (
	"parentcare_backend/internal/models"
	"parentcare_backend/internal/repositories"
	"parentcare_backend/internal/services/dto"
	"parentcare_backend/pkg/apperrors"
)

// AssignmentService manages vendor-to-service assignments for a client.
// Assigning the same (client, daughter, service type) again swaps the
// vendor and reactivates the assignment.
type AssignmentService interface {
	Assign(req *dto.AssignServiceRequest) (*models.ServiceAssignment, error)
	UpdateStatus(id string, status string) error
	ListForDaughter(daughterID string) ([]models.ServiceAssignment, error)
}

type AssignmentServiceImpl struct {
	userRepo       repositories.UserRepository
	assignmentRepo repositories.AssignmentRepository
}

func NewAssignmentService(
	userRepo repositories.UserRepository,
	assignmentRepo repositories.AssignmentRepository,
) AssignmentService {
	return &AssignmentServiceImpl{
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
	}
}

func (s *AssignmentServiceImpl) Assign(req *dto.AssignServiceRequest) (*models.ServiceAssignment, error) {
	client, err := s.findWithRole(req.ClientID, models.UserRoleParent)
	if err != nil {
		return nil, err
	}
	daughter, err := s.findWithRole(req.DaughterID, models.UserRoleDaughter)
	if err != nil {
		return nil, err
	}

	assignment := &models.ServiceAssignment{
		ClientID:    client.ID,
		DaughterID:  daughter.ID,
		ServiceType: req.ServiceType,
		Status:      models.AssignmentStatusActive,
	}
	if req.VendorID != "" {
		vendor, err := s.findWithRole(req.VendorID, models.UserRoleVendor)
		if err != nil {
			return nil, err
		}
		assignment.VendorID = &vendor.ID
	}

	if err := s.assignmentRepo.Upsert(assignment); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return assignment, nil
}

func (s *AssignmentServiceImpl) UpdateStatus(id string, status string) error {
	if !models.ValidAssignmentStatus(models.AssignmentStatus(status)) {
		return apperrors.ErrInvalidStatus
	}

	err := s.assignmentRepo.UpdateStatus(id, models.AssignmentStatus(status))
	if err != nil {
		if apperrors.Is(err, repositories.ErrAssignmentNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AssignmentServiceImpl) ListForDaughter(daughterID string) ([]models.ServiceAssignment, error) {
	if _, err := s.findWithRole(daughterID, models.UserRoleDaughter); err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.FindByDaughter(daughterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return assignments, nil
}

func (s *AssignmentServiceImpl) findWithRole(id string, role models.UserRole) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != role {
		return nil, apperrors.NewBadRequestError("User does not have the expected role")
	}
	return user, nil
}
