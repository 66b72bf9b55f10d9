package services

import (
	"context"
	"mime/multipart"

	"parentcare_backend/internal/models"
	"parentcare_backend/internal/repositories"
	"parentcare_backend/internal/services/dto"

	"github.com/google/uuid"
)

// fakeUserRepo is an in-memory UserRepository. Its CreateWithSatellite
// enforces uniqueness the way the database indexes would.
type fakeUserRepo struct {
	users      []*models.User
	satellites []any
	createErr  error
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmailOrPhone(identifier string) (*models.User, error) {
	for _, u := range f.users {
		if (u.Email != nil && *u.Email == identifier) || u.Phone == identifier {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(email string) (bool, error) {
	for _, u := range f.users {
		if u.Email != nil && *u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) PhoneExists(phone string) (bool, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) CreateWithSatellite(user *models.User, satellite any) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if user.Email != nil && u.Email != nil && *u.Email == *user.Email {
			return repositories.ErrDuplicateEmail
		}
		if u.Phone == user.Phone {
			return repositories.ErrDuplicatePhone
		}
	}
	user.ID = uuid.NewString()
	f.users = append(f.users, user)
	f.satellites = append(f.satellites, satellite)
	return nil
}

func (f *fakeUserRepo) FindRegistrations(filter repositories.RegistrationFilter) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateStatus(userID string, status models.UserStatus) error {
	for _, u := range f.users {
		if u.ID == userID {
			u.Status = status
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Delete(userID string) error {
	for i, u := range f.users {
		if u.ID == userID {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindApprovedVendors(service string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == models.UserRoleVendor && u.Status == models.UserStatusApproved {
			out = append(out, *u)
		}
	}
	return out, nil
}

// fakeUploads records cleanup calls instead of touching the filesystem.
type fakeUploads struct {
	cleaned []string
}

func (f *fakeUploads) StoreRegistrationFiles(ctx context.Context, photo, identityDoc *multipart.FileHeader, vendor bool) (dto.StoredFiles, error) {
	return dto.StoredFiles{}, nil
}

func (f *fakeUploads) Cleanup(ctx context.Context, paths ...string) {
	for _, p := range paths {
		if p != "" {
			f.cleaned = append(f.cleaned, p)
		}
	}
}
