package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"parentcare_backend/internal/logger"
	"parentcare_backend/internal/services/dto"
	"parentcare_backend/internal/storage"
	"parentcare_backend/pkg/apperrors"
)

const (
	photoField       = "photo"
	identityDocField = "identity_doc"
)

// UploadService persists registration uploads before any database work and
// removes them again when a later step fails.
type UploadService interface {
	// StoreRegistrationFiles validates and stores the photo and, when
	// present, the identity document. Vendor uploads land in the vendor
	// subdirectory. A nil header means the field was not sent.
	StoreRegistrationFiles(ctx context.Context, photo, identityDoc *multipart.FileHeader, vendor bool) (dto.StoredFiles, error)

	// Cleanup deletes stored files best-effort. Failures are logged and
	// never surfaced.
	Cleanup(ctx context.Context, paths ...string)
}

type UploadServiceImpl struct {
	store     storage.Storage
	maxSize   int64
	vendorDir string
	baseURL   string
}

func NewUploadService(store storage.Storage, maxSize int64, vendorDir, baseURL string) UploadService {
	return &UploadServiceImpl{
		store:     store,
		maxSize:   maxSize,
		vendorDir: vendorDir,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *UploadServiceImpl) StoreRegistrationFiles(ctx context.Context, photo, identityDoc *multipart.FileHeader, vendor bool) (dto.StoredFiles, error) {
	var files dto.StoredFiles

	subdir := ""
	if vendor {
		subdir = s.vendorDir
	}

	if photo != nil {
		p, err := s.storeOne(ctx, photoField, photo, false, subdir)
		if err != nil {
			return dto.StoredFiles{}, err
		}
		files.PhotoPath = p
	}

	if identityDoc != nil {
		p, err := s.storeOne(ctx, identityDocField, identityDoc, true, subdir)
		if err != nil {
			// Don't leave the photo orphaned
			s.Cleanup(ctx, files.Paths()...)
			return dto.StoredFiles{}, err
		}
		files.IdentityDocPath = p
	}

	return files, nil
}

// storeOne validates MIME type and size, then writes the file under a
// collision-resistant name and returns its web path.
func (s *UploadServiceImpl) storeOne(ctx context.Context, field string, fh *multipart.FileHeader, allowPDF bool, subdir string) (string, error) {
	if fh.Size > s.maxSize {
		return "", apperrors.ErrFileTooLarge.WithDetails(map[string]string{
			field: fmt.Sprintf("File exceeds the %dMB limit", s.maxSize/(1024*1024)),
		})
	}

	contentType := fh.Header.Get("Content-Type")
	if !allowedType(contentType, allowPDF) {
		allowed := "images"
		if allowPDF {
			allowed = "images and PDF"
		}
		return "", apperrors.ErrInvalidFileType.WithDetails(map[string]string{
			field: fmt.Sprintf("Only %s are allowed", allowed),
		})
	}

	name := fmt.Sprintf("%s-%d-%s%s",
		field,
		time.Now().UnixNano(),
		randomHex(4),
		strings.ToLower(filepath.Ext(fh.Filename)),
	)
	relPath := path.Join(subdir, name)

	src, err := fh.Open()
	if err != nil {
		return "", apperrors.ErrRegistrationFailed.WithError(err)
	}
	defer src.Close()

	if err := s.store.Save(ctx, relPath, src); err != nil {
		return "", apperrors.ErrRegistrationFailed.WithError(err)
	}

	return s.store.URL(relPath), nil
}

func (s *UploadServiceImpl) Cleanup(ctx context.Context, paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := s.store.Delete(ctx, s.relativePath(p)); err != nil {
			logger.CtxWarn(ctx, "failed to clean up uploaded file", "path", p, "error", err)
		}
	}
}

// relativePath maps a public web path back to the storage-relative path.
func (s *UploadServiceImpl) relativePath(webPath string) string {
	rel := webPath
	if s.baseURL != "" {
		rel = strings.TrimPrefix(rel, s.baseURL)
	}
	return strings.TrimPrefix(rel, "/")
}

func allowedType(contentType string, allowPDF bool) bool {
	if strings.HasPrefix(contentType, "image/") {
		return true
	}
	return allowPDF && contentType == "application/pdf"
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// Fall back to the timestamp already in the name
		return "00000000"[:n*2]
	}
	return hex.EncodeToString(b)
}
