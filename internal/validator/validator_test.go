package validator

import (
	"testing"

	"parentcare_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParent() dto.ParentRegisterRequest {
	return dto.ParentRegisterRequest{
		Name:     "Asha Rao",
		Phone:    "9876543210",
		Email:    "asha@example.com",
		Password: "secret123",
		Address:  "12 MG Road, Bengaluru 560001",
		Aadhar:   "1234 5678 9012",
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	return vErr.Errors
}

func TestValidParentPasses(t *testing.T) {
	v := New()
	req := validParent()
	assert.NoError(t, v.Validate(&req))
}

func TestAadharFormat(t *testing.T) {
	v := New()

	cases := []struct {
		name   string
		aadhar string
		ok     bool
	}{
		{"grouped digits", "1234 5678 9012", true},
		{"no spaces", "123456789012", false},
		{"eleven digits", "1234 5678 901", false},
		{"letters", "abcd efgh ijkl", false},
		{"tab separated", "1234\t5678\t9012", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validParent()
			req.Aadhar = tc.aadhar
			err := v.Validate(&req)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				errs := fieldErrors(t, err)
				assert.Contains(t, errs, "aadhar")
			}
		})
	}
}

func TestIndianMobileFormat(t *testing.T) {
	v := New()

	cases := []struct {
		phone string
		ok    bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"5876543210", false}, // must start 6-9
		{"987654321", false},  // 9 digits
		{"98765432100", false},
		{"98765 43210", false},
	}

	for _, tc := range cases {
		req := validParent()
		req.Phone = tc.phone
		err := v.Validate(&req)
		if tc.ok {
			assert.NoError(t, err, "phone %q should pass", tc.phone)
		} else {
			errs := fieldErrors(t, err)
			assert.Contains(t, errs, "phone", "phone %q should fail", tc.phone)
		}
	}
}

func TestDaughterRequiresPanAndRelationship(t *testing.T) {
	v := New()

	req := dto.DaughterRegisterRequest{
		Name:     "Meera Nair",
		Phone:    "9876543211",
		Email:    "meera@example.com",
		Password: "secret123",
		Address:  "3 Lake View Street, Kochi 682001",
	}

	errs := fieldErrors(t, v.Validate(&req))
	assert.Contains(t, errs, "pan")
	assert.Contains(t, errs, "parent_name")
	assert.Contains(t, errs, "relationship")

	req.Pan = "ABCDE1234F"
	req.ParentName = "Lakshmi Nair"
	req.Relationship = "daughter-in-law"
	assert.NoError(t, v.Validate(&req))

	req.Relationship = "cousin"
	errs = fieldErrors(t, v.Validate(&req))
	assert.Contains(t, errs, "relationship")
}

func TestPanFormat(t *testing.T) {
	v := New()

	cases := []struct {
		pan string
		ok  bool
	}{
		{"ABCDE1234F", true},
		{"abcde1234f", false},
		{"ABCD1234EF", false},
		{"ABCDE12345", false},
	}

	for _, tc := range cases {
		req := validParent()
		req.Pan = tc.pan
		err := v.Validate(&req)
		if tc.ok {
			assert.NoError(t, err, "pan %q should pass", tc.pan)
		} else {
			errs := fieldErrors(t, err)
			assert.Contains(t, errs, "pan", "pan %q should fail", tc.pan)
		}
	}
}

func TestAllErrorsCollected(t *testing.T) {
	v := New()

	req := dto.ParentRegisterRequest{
		Name:     "A",
		Phone:    "123",
		Email:    "not-an-email",
		Password: "short",
		Address:  "tiny",
	}

	errs := fieldErrors(t, v.Validate(&req))
	for _, field := range []string{"name", "phone", "email", "password", "address", "aadhar"} {
		assert.Contains(t, errs, field)
	}
}

func TestVendorServicesRequired(t *testing.T) {
	v := New()

	req := dto.VendorRegisterRequest{
		Name:     "Ravi Services",
		Phone:    "9876543212",
		Email:    "ravi@example.com",
		Password: "secret123",
		Address:  "45 Brigade Road, Bengaluru 560025",
	}

	errs := fieldErrors(t, v.Validate(&req))
	assert.Contains(t, errs, "services")

	req.Services = []string{"Nurse"}
	assert.NoError(t, v.Validate(&req))
}

func TestLeadContactNumber(t *testing.T) {
	v := New()

	req := dto.VendorLeadRequest{
		Name:          "Ravi Kumar",
		ContactNumber: "987654321", // 9 digits
		ServiceType:   "Nursing",
	}

	errs := fieldErrors(t, v.Validate(&req))
	assert.Contains(t, errs, "contact_number")

	req.ContactNumber = "9876543210"
	assert.NoError(t, v.Validate(&req))
}
