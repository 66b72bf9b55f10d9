package services

import (
	"parentcare_backend/internal/models"
	"parentcare_backend/internal/repositories"
	"parentcare_backend/internal/services/dto"
	"parentcare_backend/internal/validator"
	"parentcare_backend/pkg/apperrors"
)

// VendorLeadService handles the lightweight pre-registration callback form.
// Leads are standalone sales records, not linked to users.
type VendorLeadService interface {
	Capture(req *dto.VendorLeadRequest) (*models.VendorRegistration, error)
	List(filter repositories.LeadFilter) (*dto.LeadListResponse, error)
	Get(id string) (*models.VendorRegistration, error)
	UpdateStatus(id string, status string) error
	Delete(id string) error
}

type VendorLeadServiceImpl struct {
	leadRepo repositories.VendorRegistrationRepository
	validate *validator.Validator
}

func NewVendorLeadService(
	leadRepo repositories.VendorRegistrationRepository,
	validate *validator.Validator,
) VendorLeadService {
	return &VendorLeadServiceImpl{
		leadRepo: leadRepo,
		validate: validate,
	}
}

func (s *VendorLeadServiceImpl) Capture(req *dto.VendorLeadRequest) (*models.VendorRegistration, error) {
	if err := s.validate.Validate(req); err != nil {
		var vErr *validator.ValidationError
		if apperrors.As(err, &vErr) {
			return nil, apperrors.ValidationError(vErr.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	lead := &models.VendorRegistration{
		Name:               req.Name,
		ContactNumber:      req.ContactNumber,
		Email:              req.Email,
		ServiceType:        req.ServiceType,
		ServiceDescription: req.ServiceDescription,
		Status:             models.LeadStatusPending,
	}
	if err := s.leadRepo.Create(lead); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return lead, nil
}

func (s *VendorLeadServiceImpl) List(filter repositories.LeadFilter) (*dto.LeadListResponse, error) {
	if filter.Status != "" && !models.ValidLeadStatus(filter.Status) {
		return nil, apperrors.ErrInvalidStatus
	}

	leads, total, err := s.leadRepo.Find(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.LeadListResponse{Leads: leads, Total: total}, nil
}

func (s *VendorLeadServiceImpl) Get(id string) (*models.VendorRegistration, error) {
	lead, err := s.leadRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVendorRegistrationNotFound) {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return lead, nil
}

func (s *VendorLeadServiceImpl) UpdateStatus(id string, status string) error {
	if !models.ValidLeadStatus(models.LeadStatus(status)) {
		return apperrors.ErrInvalidStatus
	}

	err := s.leadRepo.UpdateStatus(id, models.LeadStatus(status))
	if err != nil {
		if apperrors.Is(err, repositories.ErrVendorRegistrationNotFound) {
			return apperrors.ErrVendorNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *VendorLeadServiceImpl) Delete(id string) error {
	err := s.leadRepo.Delete(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVendorRegistrationNotFound) {
			return apperrors.ErrVendorNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
