package services

import (
	"parentcare_backend/internal/models"
	"parentcare_backend/internal/repositories"
	"parentcare_backend/pkg/apperrors"
)

// RelationshipService links daughters to the parents they coordinate care
// for. Links are created only by the explicit add-parent action.
type RelationshipService interface {
	AddParent(daughterID, parentID string) error
	ListParents(daughterID string) ([]models.PublicProfile, error)
}

type RelationshipServiceImpl struct {
	userRepo repositories.UserRepository
	relRepo  repositories.RelationshipRepository
}

func NewRelationshipService(
	userRepo repositories.UserRepository,
	relRepo repositories.RelationshipRepository,
) RelationshipService {
	return &RelationshipServiceImpl{
		userRepo: userRepo,
		relRepo:  relRepo,
	}
}

func (s *RelationshipServiceImpl) AddParent(daughterID, parentID string) error {
	daughter, err := s.findWithRole(daughterID, models.UserRoleDaughter)
	if err != nil {
		return err
	}
	parent, err := s.findWithRole(parentID, models.UserRoleParent)
	if err != nil {
		return err
	}

	rel := &models.ParentDaughterRelationship{
		ParentID:   parent.ID,
		DaughterID: daughter.ID,
	}
	if err := s.relRepo.Create(rel); err != nil {
		if apperrors.Is(err, repositories.ErrRelationshipExists) {
			return apperrors.ErrRelationshipExists
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *RelationshipServiceImpl) ListParents(daughterID string) ([]models.PublicProfile, error) {
	if _, err := s.findWithRole(daughterID, models.UserRoleDaughter); err != nil {
		return nil, err
	}

	parents, err := s.relRepo.FindParentsOfDaughter(daughterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profiles := make([]models.PublicProfile, 0, len(parents))
	for i := range parents {
		profiles = append(profiles, parents[i].Public())
	}
	return profiles, nil
}

func (s *RelationshipServiceImpl) findWithRole(id string, role models.UserRole) (*models.User, error) {
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
