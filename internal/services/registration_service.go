package services

import (
	"context"

	"parentcare_backend/internal/auth"
	"parentcare_backend/internal/logger"
	"parentcare_backend/internal/models"
	"parentcare_backend/internal/repositories"
	"parentcare_backend/internal/services/dto"
	"parentcare_backend/internal/validator"
	"parentcare_backend/pkg/apperrors"
)

// RegistrationService is the transactional signup workflow: validate, check
// uniqueness, hash the credential, write the user row plus its role
// satellite atomically, and clean up stored uploads on every failure path.
type RegistrationService interface {
	RegisterParent(ctx context.Context, req *dto.ParentRegisterRequest, files dto.StoredFiles) (*dto.NewIdentity, error)
	RegisterDaughter(ctx context.Context, req *dto.DaughterRegisterRequest, files dto.StoredFiles) (*dto.NewIdentity, error)
	RegisterVendor(ctx context.Context, req *dto.VendorRegisterRequest, files dto.StoredFiles) (*dto.NewIdentity, error)
}

type RegistrationServiceImpl struct {
	userRepo repositories.UserRepository
	uploads  UploadService
	validate *validator.Validator
}

func NewRegistrationService(
	userRepo repositories.UserRepository,
	uploads UploadService,
	validate *validator.Validator,
) RegistrationService {
	return &RegistrationServiceImpl{
		userRepo: userRepo,
		uploads:  uploads,
		validate: validate,
	}
}

func (s *RegistrationServiceImpl) RegisterParent(ctx context.Context, req *dto.ParentRegisterRequest, files dto.StoredFiles) (*dto.NewIdentity, error) {
	fieldErrors := s.collectFieldErrors(req, files)
	if len(fieldErrors) > 0 {
		return nil, s.fail(ctx, files, apperrors.ValidationError(fieldErrors))
	}

	user := s.newUser(models.UserRoleParent, req.Name, req.Phone, req.Email, req.Address, files)
	user.Aadhar = req.Aadhar
	user.VoterID = req.VoterID
	user.Pan = req.Pan

	satellite := &models.ParentProfile{
		MedicalConditions: req.MedicalConditions,
		EmergencyContact:  req.EmergencyContact,
	}

	return s.provision(ctx, user, satellite, req.Email, req.Phone, req.Password, files)
}

func (s *RegistrationServiceImpl) RegisterDaughter(ctx context.Context, req *dto.DaughterRegisterRequest, files dto.StoredFiles) (*dto.NewIdentity, error) {
	fieldErrors := s.collectFieldErrors(req, files)
	if len(fieldErrors) > 0 {
		return nil, s.fail(ctx, files, apperrors.ValidationError(fieldErrors))
	}

	user := s.newUser(models.UserRoleDaughter, req.Name, req.Phone, req.Email, req.Address, files)
	user.Aadhar = req.Aadhar
	user.VoterID = req.VoterID
	user.Pan = req.Pan

	satellite := &models.DaughterProfile{
		ParentName:   req.ParentName,
		Relationship: models.Relationship(req.Relationship),
	}

	return s.provision(ctx, user, satellite, req.Email, req.Phone, req.Password, files)
}

func (s *RegistrationServiceImpl) RegisterVendor(ctx context.Context, req *dto.VendorRegisterRequest, files dto.StoredFiles) (*dto.NewIdentity, error) {
	fieldErrors := s.collectFieldErrors(req, files)
	if len(fieldErrors) > 0 {
		return nil, s.fail(ctx, files, apperrors.ValidationError(fieldErrors))
	}

	// Vendor cross-field rule: at least one identity number, the identity
	// document file, and the photo must all be present.
	if (req.Aadhar == "" && req.VoterID == "" && req.Pan == "") ||
		files.IdentityDocPath == "" || files.PhotoPath == "" {
		return nil, s.fail(ctx, files, apperrors.ErrVendorIdentityMissing)
	}

	user := s.newUser(models.UserRoleVendor, req.Name, req.Phone, req.Email, req.Address, files)
	user.Aadhar = req.Aadhar
	user.VoterID = req.VoterID
	user.Pan = req.Pan

	businessName := req.BusinessName
	if businessName == "" {
		businessName = req.Name
	}
	satellite := &models.VendorProfile{
		BusinessName:       businessName,
		Services:           req.Services,
		ServiceDescription: req.ServiceDescription,
		GstNumber:          req.GstNumber,
		IdentityDocPath:    files.IdentityDocPath,
	}

	return s.provision(ctx, user, satellite, req.Email, req.Phone, req.Password, files)
}

// collectFieldErrors runs the struct rules and merges the photo-present
// check, which lives outside the form struct because files travel
// separately in the multipart body.
func (s *RegistrationServiceImpl) collectFieldErrors(req interface{}, files dto.StoredFiles) map[string]string {
	fieldErrors := make(map[string]string)

	if err := s.validate.Validate(req); err != nil {
		var vErr *validator.ValidationError
		if apperrors.As(err, &vErr) {
			for field, msg := range vErr.Errors {
				fieldErrors[field] = msg
			}
		} else {
			fieldErrors["_"] = "Invalid request payload"
		}
	}

	if files.PhotoPath == "" {
		fieldErrors[photoField] = "Profile photo is required"
	}

	return fieldErrors
}

// provision runs the shared tail of every registration: uniqueness
// pre-check, credential hashing, and the atomic two-row insert.
func (s *RegistrationServiceImpl) provision(ctx context.Context, user *models.User, satellite any, email, phone, password string, files dto.StoredFiles) (*dto.NewIdentity, error) {
	// Pre-check is an optimization only; the unique indexes are the
	// authoritative guard. Email first, then phone.
	exists, err := s.userRepo.EmailExists(email)
	if err != nil {
		return nil, s.storageFailure(ctx, files, err)
	}
	if exists {
		return nil, s.fail(ctx, files, apperrors.ErrEmailAlreadyRegistered)
	}

	exists, err = s.userRepo.PhoneExists(phone)
	if err != nil {
		return nil, s.storageFailure(ctx, files, err)
	}
	if exists {
		return nil, s.fail(ctx, files, apperrors.ErrPhoneAlreadyRegistered)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, s.storageFailure(ctx, files, err)
	}
	user.PasswordHash = &hash

	if err := s.userRepo.CreateWithSatellite(user, satellite); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrDuplicateEmail):
			return nil, s.fail(ctx, files, apperrors.ErrEmailAlreadyRegistered)
		case apperrors.Is(err, repositories.ErrDuplicatePhone):
			return nil, s.fail(ctx, files, apperrors.ErrPhoneAlreadyRegistered)
		default:
			return nil, s.storageFailure(ctx, files, err)
		}
	}

	logger.CtxInfo(ctx, "user registered",
		"user_id", user.ID,
		"role", string(user.Role),
	)

	return &dto.NewIdentity{
		ID:     user.ID,
		Role:   user.Role,
		Name:   user.Name,
		Email:  email,
		Phone:  user.Phone,
		Status: user.Status,
	}, nil
}

// newUser builds the root identity row. Status is always pending regardless
// of caller input.
func (s *RegistrationServiceImpl) newUser(role models.UserRole, name, phone, email, address string, files dto.StoredFiles) *models.User {
	user := &models.User{
		Role:    role,
		Name:    name,
		Phone:   phone,
		Email:   &email,
		Address: address,
		Status:  models.UserStatusPending,
	}
	if files.PhotoPath != "" {
		photoPath := files.PhotoPath
		user.PhotoPath = &photoPath
	}
	return user
}

// fail cleans up stored uploads and passes the error through.
func (s *RegistrationServiceImpl) fail(ctx context.Context, files dto.StoredFiles, err error) error {
	s.uploads.Cleanup(ctx, files.Paths()...)
	return err
}

// storageFailure logs the cause server-side and hands the client the
// generic message only.
func (s *RegistrationServiceImpl) storageFailure(ctx context.Context, files dto.StoredFiles, err error) error {
	logger.CtxWithError(ctx, "registration failed", err)
	return s.fail(ctx, files, apperrors.ErrRegistrationFailed.WithError(err))
}
