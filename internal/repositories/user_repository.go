package repositories

import (
	"errors"
	"strings"

	"parentcare_backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicatePhone = errors.New("phone already registered")
)

// RegistrationFilter narrows admin registration listings.
type RegistrationFilter struct {
	Role   models.UserRole
	Status models.UserStatus
	Limit  int
}

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmailOrPhone(identifier string) (*models.User, error)
	EmailExists(email string) (bool, error)
	PhoneExists(phone string) (bool, error)

	// CreateWithSatellite inserts the user row and its role satellite in a
	// single transaction. Unique-constraint violations come back as
	// ErrDuplicateEmail / ErrDuplicatePhone.
	CreateWithSatellite(user *models.User, satellite any) error

	FindRegistrations(filter RegistrationFilter) ([]models.User, error)
	UpdateStatus(userID string, status models.UserStatus) error
	Delete(userID string) error

	FindApprovedVendors(service string) ([]models.User, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.
		Preload("ParentProfile").Preload("DaughterProfile").Preload("VendorProfile").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmailOrPhone(identifier string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ? OR phone = ?", identifier, identifier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepositoryImpl) PhoneExists(phone string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("phone = ?", phone).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepositoryImpl) CreateWithSatellite(user *models.User, satellite any) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		switch s := satellite.(type) {
		case *models.ParentProfile:
			s.UserID = user.ID
			return tx.Create(s).Error
		case *models.DaughterProfile:
			s.UserID = user.ID
			return tx.Create(s).Error
		case *models.VendorProfile:
			s.UserID = user.ID
			return tx.Create(s).Error
		default:
			return errors.New("unknown satellite type")
		}
	})
	return translateUniqueViolation(err)
}

// translateUniqueViolation maps a postgres 23505 on the users email/phone
// indexes to the duplicate sentinels. The application pre-check is only an
// optimization; this catch is the authoritative guard for the race between
// check and insert.
func translateUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "email") {
			return ErrDuplicateEmail
		}
		if strings.Contains(pgErr.ConstraintName, "phone") {
			return ErrDuplicatePhone
		}
	}
	return err
}

func (r *UserRepositoryImpl) FindRegistrations(filter RegistrationFilter) ([]models.User, error) {
	query := r.db.
		Preload("ParentProfile").Preload("DaughterProfile").Preload("VendorProfile").
		Order("created_at DESC")

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) UpdateStatus(userID string, status models.UserStatus) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes the user together with its satellite row and any
// parent-daughter links, in one transaction.
func (r *UserRepositoryImpl) Delete(userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if err := tx.Where("parent_id = ? OR daughter_id = ?", userID, userID).
			Delete(&models.ParentDaughterRelationship{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.ParentProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.DaughterProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.VendorProfile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

func (r *UserRepositoryImpl) FindApprovedVendors(service string) ([]models.User, error) {
	query := r.db.
		Preload("VendorProfile").
		Where("role = ? AND status = ?", models.UserRoleVendor, models.UserStatusApproved).
		Order("created_at DESC")

	if service != "" {
		// Match against the text[] services column of the vendor profile
		query = query.Joins("JOIN vendor_profiles ON vendor_profiles.user_id = users.id").
			Where("? = ANY(vendor_profiles.services)", service)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
