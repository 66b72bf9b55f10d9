package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"parentcare_backend/internal/app"
	"parentcare_backend/internal/config"
	"parentcare_backend/internal/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer wraps an httptest server over the full router plus a direct
// database handle for assertions.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer boots the application against the database named by
// DATABASE_URL. Tests are skipped when the variable is not set.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	config.LoadConfig()
	cfg := config.AppConfig
	cfg.Storage.BasePath = t.TempDir()

	logger.Init("development")

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, app.Migrate(db), "failed to migrate test database")

	router := app.SetupRouter(cfg, db)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &TestServer{Server: srv, DB: db}
}

// SendJSON posts a JSON body and returns the response with its body read.
func (ts *TestServer) SendJSON(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	return ts.do(t, req)
}

// FilePart describes one file field of a multipart request.
type FilePart struct {
	Field       string
	Filename    string
	ContentType string
	Content     []byte
}

// SendMultipart posts a multipart form with text fields and files.
func (ts *TestServer) SendMultipart(t *testing.T, path string, fields map[string]string, files []FilePart) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	for _, f := range files {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{
			`form-data; name="` + f.Field + `"; filename="` + f.Filename + `"`,
		}
		h["Content-Type"] = []string{f.ContentType}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())

	return ts.do(t, req)
}

func (ts *TestServer) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}
