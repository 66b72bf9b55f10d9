package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"parentcare_backend/internal/storage"
	"parentcare_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader builds a real *multipart.FileHeader by writing and
// re-parsing a multipart body.
func makeFileHeader(t *testing.T, field, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	require.NotEmpty(t, form.File[field])
	return form.File[field][0]
}

func newTestUploadService(t *testing.T, maxSize int64) (UploadService, string) {
	t.Helper()

	dir := t.TempDir()
	st, err := storage.NewLocalStorage(storage.Config{BasePath: dir, BaseURL: "/uploads"})
	require.NoError(t, err)

	return NewUploadService(st, maxSize, "vendor-details", "/uploads"), dir
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()

	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestStoreRegistrationFiles(t *testing.T) {
	svc, dir := newTestUploadService(t, 5*1024*1024)

	photo := makeFileHeader(t, "photo", "me.jpg", "image/jpeg", []byte("jpeg-bytes"))
	doc := makeFileHeader(t, "identity_doc", "id.pdf", "application/pdf", []byte("pdf-bytes"))

	files, err := svc.StoreRegistrationFiles(context.Background(), photo, doc, true)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(files.PhotoPath, "/uploads/vendor-details/photo-"), files.PhotoPath)
	assert.True(t, strings.HasPrefix(files.IdentityDocPath, "/uploads/vendor-details/identity_doc-"), files.IdentityDocPath)
	assert.True(t, strings.HasSuffix(files.PhotoPath, ".jpg"))
	assert.True(t, strings.HasSuffix(files.IdentityDocPath, ".pdf"))
	assert.Len(t, listFiles(t, dir), 2)

	// Non-vendor uploads go to the flat root
	files2, err := svc.StoreRegistrationFiles(context.Background(),
		makeFileHeader(t, "photo", "me.png", "image/png", []byte("png")), nil, false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(files2.PhotoPath, "/uploads/photo-"), files2.PhotoPath)
}

func TestOversizedFileRejected(t *testing.T) {
	svc, dir := newTestUploadService(t, 4)

	photo := makeFileHeader(t, "photo", "big.jpg", "image/jpeg", []byte("more than four bytes"))

	_, err := svc.StoreRegistrationFiles(context.Background(), photo, nil, false)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeFileTooLarge, appErr.Code)
	assert.Empty(t, listFiles(t, dir), "nothing may be stored after a rejection")
}

func TestWrongMimeTypeRejected(t *testing.T) {
	svc, dir := newTestUploadService(t, 5*1024*1024)

	// The photo field only accepts images
	photo := makeFileHeader(t, "photo", "notes.txt", "text/plain", []byte("text"))
	_, err := svc.StoreRegistrationFiles(context.Background(), photo, nil, false)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidFileType, appErr.Code)

	// The identity document accepts PDF but nothing else beyond images
	doc := makeFileHeader(t, "identity_doc", "id.zip", "application/zip", []byte("zip"))
	_, err = svc.StoreRegistrationFiles(context.Background(), nil, doc, false)
	require.Error(t, err)

	assert.Empty(t, listFiles(t, dir))
}

func TestSecondFileFailureRemovesFirst(t *testing.T) {
	svc, dir := newTestUploadService(t, 5*1024*1024)

	photo := makeFileHeader(t, "photo", "me.jpg", "image/jpeg", []byte("jpeg"))
	badDoc := makeFileHeader(t, "identity_doc", "id.zip", "application/zip", []byte("zip"))

	_, err := svc.StoreRegistrationFiles(context.Background(), photo, badDoc, true)
	require.Error(t, err)
	assert.Empty(t, listFiles(t, dir), "the stored photo must be removed when the document fails")
}

func TestCleanupIsBestEffortAndIdempotent(t *testing.T) {
	svc, dir := newTestUploadService(t, 5*1024*1024)

	photo := makeFileHeader(t, "photo", "me.jpg", "image/jpeg", []byte("jpeg"))
	doc := makeFileHeader(t, "identity_doc", "id.pdf", "application/pdf", []byte("pdf"))

	files, err := svc.StoreRegistrationFiles(context.Background(), photo, doc, false)
	require.NoError(t, err)
	require.Len(t, listFiles(t, dir), 2)

	svc.Cleanup(context.Background(), files.PhotoPath, files.IdentityDocPath)
	assert.Empty(t, listFiles(t, dir))

	// A second pass over already-deleted paths must not panic or error
	svc.Cleanup(context.Background(), files.PhotoPath, files.IdentityDocPath, "")
	assert.Empty(t, listFiles(t, dir))
}
