package repositories

import (
	"errors"

	"parentcare_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrAssignmentNotFound = errors.New("service assignment not found")

type AssignmentRepository interface {
	Upsert(assignment *models.ServiceAssignment) error
	UpdateStatus(id string, status models.AssignmentStatus) error
	FindByDaughter(daughterID string) ([]models.ServiceAssignment, error)
}

type AssignmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &AssignmentRepositoryImpl{db: db}
}

// Upsert inserts the assignment or, when the (client, daughter, service
// type) row already exists, swaps its vendor and resets the status.
func (r *AssignmentRepositoryImpl) Upsert(assignment *models.ServiceAssignment) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "client_id"},
			{Name: "daughter_id"},
			{Name: "service_type"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"vendor_id": assignment.VendorID,
			"status":    models.AssignmentStatusActive,
		}),
	}).Create(assignment).Error
}

func (r *AssignmentRepositoryImpl) UpdateStatus(id string, status models.AssignmentStatus) error {
	result := r.db.Model(&models.ServiceAssignment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func (r *AssignmentRepositoryImpl) FindByDaughter(daughterID string) ([]models.ServiceAssignment, error) {
	var assignments []models.ServiceAssignment
	err := r.db.
		Where("daughter_id = ?", daughterID).
		Preload("Client").
		Preload("Vendor").
		Order("created_at DESC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}
