package repositories

import (
	"errors"

	"parentcare_backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrRelationshipExists = errors.New("relationship already exists")

type RelationshipRepository interface {
	Create(rel *models.ParentDaughterRelationship) error
	FindParentsOfDaughter(daughterID string) ([]models.User, error)
}

type RelationshipRepositoryImpl struct {
	db *gorm.DB
}

func NewRelationshipRepository(db *gorm.DB) RelationshipRepository {
	return &RelationshipRepositoryImpl{db: db}
}

func (r *RelationshipRepositoryImpl) Create(rel *models.ParentDaughterRelationship) error {
	err := r.db.Create(rel).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrRelationshipExists
		}
		return err
	}
	return nil
}

func (r *RelationshipRepositoryImpl) FindParentsOfDaughter(daughterID string) ([]models.User, error) {
	var parents []models.User
	err := r.db.
		Joins("JOIN parent_daughter_relationships pdr ON pdr.parent_id = users.id").
		Where("pdr.daughter_id = ?", daughterID).
		Preload("ParentProfile").
		Order("pdr.created_at DESC").
		Find(&parents).Error
	if err != nil {
		return nil, err
	}
	return parents, nil
}
