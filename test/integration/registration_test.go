package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"parentcare_backend/internal/models"
	"parentcare_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParentRegistrationEndToEnd(t *testing.T) {
	ts := helpers.NewTestServer(t)

	email := helpers.UniqueEmail("asha")
	phone := helpers.UniquePhone()
	t.Cleanup(func() { helpers.DeleteUserByPhone(t, ts.DB, phone) })

	res, body := ts.SendMultipart(t, "/api/auth/register",
		helpers.ParentForm(email, phone),
		[]helpers.FilePart{
			{Field: "photo", Filename: "photo.jpg", ContentType: "image/jpeg", Content: helpers.TinyJPEG},
		},
	)
	require.Equal(t, http.StatusCreated, res.StatusCode, "registration should succeed: "+body)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID     string `json:"id"`
			Role   string `json:"role"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "parent", resp.Data.Role)
	assert.Equal(t, "pending", resp.Data.Status)
	assert.NotContains(t, body, "secret123", "plaintext password must never be returned")

	// Exactly one users row and one satellite row
	var user models.User
	require.NoError(t, ts.DB.First(&user, "id = ?", resp.Data.ID).Error)
	assert.Equal(t, models.UserStatusPending, user.Status)
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "secret123", *user.PasswordHash)

	var satellites int64
	require.NoError(t, ts.DB.Model(&models.ParentProfile{}).
		Where("user_id = ?", user.ID).Count(&satellites).Error)
	assert.EqualValues(t, 1, satellites)

	// The fresh pending account may log in
	res, body = ts.SendJSON(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var login struct {
		User struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))
	assert.Equal(t, "parent", login.User.Role)
}

func TestDuplicateEmailRejected(t *testing.T) {
	ts := helpers.NewTestServer(t)

	email := helpers.UniqueEmail("dup")
	phone1 := helpers.UniquePhone()
	phone2 := helpers.UniquePhone()
	t.Cleanup(func() {
		helpers.DeleteUserByPhone(t, ts.DB, phone1)
		helpers.DeleteUserByPhone(t, ts.DB, phone2)
	})

	photo := []helpers.FilePart{
		{Field: "photo", Filename: "p.jpg", ContentType: "image/jpeg", Content: helpers.TinyJPEG},
	}

	res, body := ts.SendMultipart(t, "/api/auth/register", helpers.ParentForm(email, phone1), photo)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendMultipart(t, "/api/auth/register", helpers.ParentForm(email, phone2), photo)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Email already registered")

	// The failed registration left no rows behind
	var count int64
	require.NoError(t, ts.DB.Model(&models.User{}).Where("phone = ?", phone2).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDuplicatePhoneRejected(t *testing.T) {
	ts := helpers.NewTestServer(t)

	phone := helpers.UniquePhone()
	t.Cleanup(func() { helpers.DeleteUserByPhone(t, ts.DB, phone) })

	photo := []helpers.FilePart{
		{Field: "photo", Filename: "p.jpg", ContentType: "image/jpeg", Content: helpers.TinyJPEG},
	}

	res, body := ts.SendMultipart(t, "/api/auth/register",
		helpers.ParentForm(helpers.UniqueEmail("first"), phone), photo)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendMultipart(t, "/api/auth/register",
		helpers.ParentForm(helpers.UniqueEmail("second"), phone), photo)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Phone number already registered")
}

func TestVendorRegistrationIdentityRule(t *testing.T) {
	ts := helpers.NewTestServer(t)

	photo := helpers.FilePart{Field: "photo", Filename: "p.jpg", ContentType: "image/jpeg", Content: helpers.TinyJPEG}
	doc := helpers.FilePart{Field: "identity_doc", Filename: "id.pdf", ContentType: "application/pdf", Content: helpers.TinyPDF}

	// No identity numbers and no identity document: rejected
	phone := helpers.UniquePhone()
	form := helpers.VendorForm(helpers.UniqueEmail("vendor"), phone)
	delete(form, "aadhar")
	res, body := ts.SendMultipart(t, "/api/vendor-details/register", form, []helpers.FilePart{photo})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	var count int64
	require.NoError(t, ts.DB.Model(&models.User{}).Where("phone = ?", phone).Count(&count).Error)
	assert.EqualValues(t, 0, count, "a failed vendor registration must leave no rows")

	// With an aadhar and both files: accepted
	phone2 := helpers.UniquePhone()
	t.Cleanup(func() { helpers.DeleteUserByPhone(t, ts.DB, phone2) })

	res, body = ts.SendMultipart(t, "/api/vendor-details/register",
		helpers.VendorForm(helpers.UniqueEmail("vendor2"), phone2),
		[]helpers.FilePart{photo, doc},
	)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var user models.User
	require.NoError(t, ts.DB.Preload("VendorProfile").First(&user, "phone = ?", phone2).Error)
	require.NotNil(t, user.VendorProfile)
	assert.NotEmpty(t, user.VendorProfile.IdentityDocPath)
	assert.Contains(t, user.VendorProfile.IdentityDocPath, "vendor-details")
	assert.ElementsMatch(t, []string{"Nurse", "Physiotherapy"}, []string(user.VendorProfile.Services))
}

func TestValidationErrorsAreCollected(t *testing.T) {
	ts := helpers.NewTestServer(t)

	form := map[string]string{
		"role":     "parent",
		"name":     "A",          // too short
		"phone":    "12345",      // not a mobile number
		"email":    "not-an-email",
		"password": "short",
		"address":  "short",
		"aadhar":   "123456789012", // missing spaces
	}

	res, body := ts.SendMultipart(t, "/api/auth/register", form, nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	var resp struct {
		Success bool              `json:"success"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.False(t, resp.Success)

	for _, field := range []string{"name", "phone", "email", "password", "address", "aadhar", "photo"} {
		assert.Contains(t, resp.Errors, field, "expected an error for %s", field)
	}
}
