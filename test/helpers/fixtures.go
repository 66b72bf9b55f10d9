package helpers

import (
	"fmt"
	"testing"
	"time"

	"parentcare_backend/internal/models"

	"gorm.io/gorm"
)

// TinyJPEG is a minimal JPEG header, enough to pass the MIME allow-list
// which checks the declared content type.
var TinyJPEG = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0xFF, 0xD9}

// TinyPDF is a minimal PDF payload for identity document uploads.
var TinyPDF = []byte("%PDF-1.4\n%%EOF\n")

// UniquePhone returns a valid, unique Indian mobile number.
func UniquePhone() string {
	return fmt.Sprintf("9%09d", time.Now().UnixNano()%1_000_000_000)
}

// UniqueEmail returns a unique address for test users.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// ParentForm builds a complete, valid parent registration form.
func ParentForm(email, phone string) map[string]string {
	return map[string]string{
		"role":     "parent",
		"name":     "Asha Rao",
		"phone":    phone,
		"email":    email,
		"password": "secret123",
		"address":  "12 MG Road, Bengaluru 560001",
		"aadhar":   "1234 5678 9012",
	}
}

// VendorForm builds a complete, valid vendor registration form.
func VendorForm(email, phone string) map[string]string {
	return map[string]string{
		"name":     "Ravi Services",
		"phone":    phone,
		"email":    email,
		"password": "secret123",
		"address":  "45 Brigade Road, Bengaluru 560025",
		"aadhar":   "1234 5678 9012",
		"services": `["Nurse","Physiotherapy"]`,
	}
}

// DeleteUserByPhone removes a test user and its satellites.
func DeleteUserByPhone(t *testing.T, db *gorm.DB, phone string) {
	t.Helper()

	var user models.User
	if err := db.First(&user, "phone = ?", phone).Error; err != nil {
		return
	}
	db.Where("parent_id = ? OR daughter_id = ?", user.ID, user.ID).
		Delete(&models.ParentDaughterRelationship{})
	db.Where("user_id = ?", user.ID).Delete(&models.ParentProfile{})
	db.Where("user_id = ?", user.ID).Delete(&models.DaughterProfile{})
	db.Where("user_id = ?", user.ID).Delete(&models.VendorProfile{})
	db.Delete(&user)
}
