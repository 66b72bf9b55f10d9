package services

import (
	"context"
	"errors"
	"testing"

	"parentcare_backend/internal/auth"
	"parentcare_backend/internal/models"
	"parentcare_backend/internal/repositories"
	"parentcare_backend/internal/services/dto"
	"parentcare_backend/internal/validator"
	"parentcare_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistrationFixture() (RegistrationService, *fakeUserRepo, *fakeUploads) {
	repo := &fakeUserRepo{}
	uploads := &fakeUploads{}
	svc := NewRegistrationService(repo, uploads, validator.New())
	return svc, repo, uploads
}

func parentRequest() *dto.ParentRegisterRequest {
	return &dto.ParentRegisterRequest{
		Name:              "Asha Rao",
		Phone:             "9876543210",
		Email:             "asha@example.com",
		Password:          "secret123",
		Address:           "12 MG Road, Bengaluru 560001",
		Aadhar:            "1234 5678 9012",
		MedicalConditions: "diabetes",
	}
}

func vendorRequest() *dto.VendorRegisterRequest {
	return &dto.VendorRegisterRequest{
		Name:     "Ravi Services",
		Phone:    "9876543212",
		Email:    "ravi@example.com",
		Password: "secret123",
		Address:  "45 Brigade Road, Bengaluru 560025",
		Aadhar:   "1234 5678 9012",
		Services: []string{"Nurse"},
	}
}

var testFiles = dto.StoredFiles{PhotoPath: "/uploads/photo-1-ab.jpg"}

func TestRegisterParentSuccess(t *testing.T) {
	svc, repo, uploads := newRegistrationFixture()

	identity, err := svc.RegisterParent(context.Background(), parentRequest(), testFiles)
	require.NoError(t, err)

	assert.NotEmpty(t, identity.ID)
	assert.Equal(t, models.UserRoleParent, identity.Role)
	assert.Equal(t, "asha@example.com", identity.Email)
	assert.Equal(t, models.UserStatusPending, identity.Status, "status is always pending regardless of input")

	require.Len(t, repo.users, 1)
	user := repo.users[0]
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "secret123", *user.PasswordHash, "never store plaintext")
	assert.True(t, auth.CheckPassword("secret123", *user.PasswordHash))
	require.NotNil(t, user.PhotoPath)
	assert.Equal(t, testFiles.PhotoPath, *user.PhotoPath)

	require.Len(t, repo.satellites, 1)
	profile, ok := repo.satellites[0].(*models.ParentProfile)
	require.True(t, ok)
	assert.Equal(t, "diabetes", profile.MedicalConditions)

	assert.Empty(t, uploads.cleaned, "a successful registration keeps its files")
}

func TestValidationFailureCleansUpFiles(t *testing.T) {
	svc, repo, uploads := newRegistrationFixture()

	req := parentRequest()
	req.Aadhar = "123456789012" // missing spaces
	req.Password = "short"

	_, err := svc.RegisterParent(context.Background(), req, testFiles)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	details, ok := appErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "aadhar")
	assert.Contains(t, details, "password")

	assert.Empty(t, repo.users, "no rows on validation failure")
	assert.Equal(t, []string{testFiles.PhotoPath}, uploads.cleaned)
}

func TestMissingPhotoFailsValidation(t *testing.T) {
	svc, repo, _ := newRegistrationFixture()

	_, err := svc.RegisterParent(context.Background(), parentRequest(), dto.StoredFiles{})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	details, ok := appErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "photo")
	assert.Empty(t, repo.users)
}

func TestDuplicateEmailPreCheck(t *testing.T) {
	svc, repo, uploads := newRegistrationFixture()

	_, err := svc.RegisterParent(context.Background(), parentRequest(), testFiles)
	require.NoError(t, err)

	// Same email, different phone
	req := parentRequest()
	req.Phone = "9876500000"
	_, err = svc.RegisterParent(context.Background(), req, testFiles)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyRegistered)

	assert.Len(t, repo.users, 1)
	assert.Equal(t, []string{testFiles.PhotoPath}, uploads.cleaned)
}

func TestDuplicatePhonePreCheck(t *testing.T) {
	svc, repo, _ := newRegistrationFixture()

	_, err := svc.RegisterParent(context.Background(), parentRequest(), testFiles)
	require.NoError(t, err)

	// Same phone, different email: email is checked first, so this must
	// surface as the phone conflict
	req := parentRequest()
	req.Email = "other@example.com"
	_, err = svc.RegisterParent(context.Background(), req, testFiles)
	assert.ErrorIs(t, err, apperrors.ErrPhoneAlreadyRegistered)
	assert.Len(t, repo.users, 1)
}

func TestInsertRaceTranslatedToDuplicate(t *testing.T) {
	// Two concurrent requests can both pass the pre-check; the unique
	// index violation raised at insert time must map to the same failure.
	svc, repo, uploads := newRegistrationFixture()
	repo.createErr = repositories.ErrDuplicateEmail

	_, err := svc.RegisterParent(context.Background(), parentRequest(), testFiles)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyRegistered)
	assert.Equal(t, []string{testFiles.PhotoPath}, uploads.cleaned)
}

func TestStorageFailureIsGeneric(t *testing.T) {
	svc, repo, uploads := newRegistrationFixture()
	repo.createErr = errors.New("connection reset by peer")

	_, err := svc.RegisterParent(context.Background(), parentRequest(), testFiles)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeStorageError, appErr.Code)
	assert.Equal(t, "Registration failed. Please try again.", appErr.Message)
	assert.NotContains(t, appErr.Message, "connection", "internal detail stays server-side")
	assert.Equal(t, []string{testFiles.PhotoPath}, uploads.cleaned)
}

func TestVendorIdentityRule(t *testing.T) {
	svc, repo, uploads := newRegistrationFixture()

	files := dto.StoredFiles{
		PhotoPath:       "/uploads/vendor-details/photo-1-ab.jpg",
		IdentityDocPath: "/uploads/vendor-details/identity_doc-1-cd.pdf",
	}

	// No identity numbers at all
	req := vendorRequest()
	req.Aadhar = ""
	_, err := svc.RegisterVendor(context.Background(), req, files)
	assert.ErrorIs(t, err, apperrors.ErrVendorIdentityMissing)
	assert.Empty(t, repo.users)
	assert.ElementsMatch(t, files.Paths(), uploads.cleaned)

	// No identity document file
	uploads.cleaned = nil
	_, err = svc.RegisterVendor(context.Background(), vendorRequest(),
		dto.StoredFiles{PhotoPath: files.PhotoPath})
	assert.ErrorIs(t, err, apperrors.ErrVendorIdentityMissing)

	// Aadhar plus both files succeeds
	identity, err := svc.RegisterVendor(context.Background(), vendorRequest(), files)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleVendor, identity.Role)

	require.Len(t, repo.satellites, 1)
	profile, ok := repo.satellites[0].(*models.VendorProfile)
	require.True(t, ok)
	assert.Equal(t, files.IdentityDocPath, profile.IdentityDocPath)
	assert.Equal(t, "Ravi Services", profile.BusinessName, "business name defaults to the user's name")
	assert.Equal(t, []string{"Nurse"}, []string(profile.Services))
}

func TestRegisterDaughterSatellite(t *testing.T) {
	svc, repo, _ := newRegistrationFixture()

	req := &dto.DaughterRegisterRequest{
		Name:         "Meera Nair",
		Phone:        "9876543211",
		Email:        "meera@example.com",
		Password:     "secret123",
		Address:      "3 Lake View Street, Kochi 682001",
		Pan:          "ABCDE1234F",
		ParentName:   "Lakshmi Nair",
		Relationship: "daughter-in-law",
	}

	identity, err := svc.RegisterDaughter(context.Background(), req, testFiles)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleDaughter, identity.Role)

	require.Len(t, repo.satellites, 1)
	profile, ok := repo.satellites[0].(*models.DaughterProfile)
	require.True(t, ok)
	assert.Equal(t, "Lakshmi Nair", profile.ParentName)
	assert.Equal(t, models.RelationshipDaughterInLaw, profile.Relationship)
}
