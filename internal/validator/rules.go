package validator

import (
	"regexp"

	"parentcare_backend/internal/logger"
	"parentcare_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	aadharPattern        = regexp.MustCompile(`^\d{4}\s\d{4}\s\d{4}$`)
	panPattern           = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	indianMobilePattern  = regexp.MustCompile(`^[6-9]\d{9}$`)
	contactNumberPattern = regexp.MustCompile(`^\d{10}$`)
)

// registerCustomRules wires all custom validation tags into the validator
// instance. A failed registration is a startup error.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			logger.Fatal("failed to register custom validation tag", "tag", tag, "error", err)
		}
	}

	mustRegister("indian_mobile", validateIndianMobile)
	mustRegister("aadhar", validateAadhar)
	mustRegister("pan", validatePan)
	mustRegister("relationship", validateRelationship)
	mustRegister("contact_number", validateContactNumber)
}

// Empty values are skipped; required-ness is a separate tag.

func validateIndianMobile(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return indianMobilePattern.MatchString(value)
}

func validateAadhar(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return aadharPattern.MatchString(value)
}

func validatePan(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return panPattern.MatchString(value)
}

func validateRelationship(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidRelationship(models.Relationship(value))
}

func validateContactNumber(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return contactNumberPattern.MatchString(value)
}
