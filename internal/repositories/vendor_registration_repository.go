package repositories

import (
	"errors"

	"parentcare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrVendorRegistrationNotFound = errors.New("vendor registration not found")

// LeadFilter narrows vendor-lead listings.
type LeadFilter struct {
	Status models.LeadStatus
	Limit  int
	Offset int
}

type VendorRegistrationRepository interface {
	Create(lead *models.VendorRegistration) error
	FindByID(id string) (*models.VendorRegistration, error)
	Find(filter LeadFilter) ([]models.VendorRegistration, int64, error)
	UpdateStatus(id string, status models.LeadStatus) error
	Delete(id string) error
}

type VendorRegistrationRepositoryImpl struct {
	db *gorm.DB
}

func NewVendorRegistrationRepository(db *gorm.DB) VendorRegistrationRepository {
	return &VendorRegistrationRepositoryImpl{db: db}
}

func (r *VendorRegistrationRepositoryImpl) Create(lead *models.VendorRegistration) error {
	return r.db.Create(lead).Error
}

func (r *VendorRegistrationRepositoryImpl) FindByID(id string) (*models.VendorRegistration, error) {
	var lead models.VendorRegistration
	err := r.db.First(&lead, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorRegistrationNotFound
		}
		return nil, err
	}
	return &lead, nil
}

func (r *VendorRegistrationRepositoryImpl) Find(filter LeadFilter) ([]models.VendorRegistration, int64, error) {
	query := r.db.Model(&models.VendorRegistration{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var leads []models.VendorRegistration
	if err := query.Find(&leads).Error; err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

func (r *VendorRegistrationRepositoryImpl) UpdateStatus(id string, status models.LeadStatus) error {
	result := r.db.Model(&models.VendorRegistration{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVendorRegistrationNotFound
	}
	return nil
}

func (r *VendorRegistrationRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.VendorRegistration{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVendorRegistrationNotFound
	}
	return nil
}
