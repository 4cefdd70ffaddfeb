// internal/validation/rules.go
package validation

import (
	"fmt"
	"math"
	"strings"

	"business-registry/internal/common/errors"
	"business-registry/internal/models"

	"github.com/asaskevich/govalidator"
)

// ShareTolerance is the accepted deviation when shareholdings are summed.
const ShareTolerance = 0.001

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (r *ValidationResult) add(field, message, code string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message, Code: code})
}

func (r *ValidationResult) finish() *ValidationResult {
	r.Valid = len(r.Errors) == 0
	return r
}

// Err converts a failed result into a StandardError, or nil when valid.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return errors.NewValidationFailedError(strings.Join(parts, "; "))
}

// ValidateBusinessInfo checks the business-info step's field constraints.
func ValidateBusinessInfo(b models.BusinessInfo) *ValidationResult {
	result := &ValidationResult{}

	if len(strings.TrimSpace(b.BusinessName)) < 2 {
		result.add("businessName", "Business name must be at least 2 characters.", "MIN_LENGTH")
	}
	if !models.IsBusinessType(string(b.BusinessType)) {
		result.add("businessType", "You need to select a business type.", "INVALID_ENUM")
	}
	if len(strings.TrimSpace(b.ActivityCategory)) < 3 {
		result.add("activityCategory", "Activity is required.", "MIN_LENGTH")
	}
	if !models.IsRegion(b.Region) {
		result.add("region", "Please select a region.", "INVALID_ENUM")
	}
	if len(strings.TrimSpace(b.City)) < 2 {
		result.add("city", "City is required.", "MIN_LENGTH")
	}
	if !isPhone(b.BusinessPhone) {
		result.add("businessPhone", "A valid phone number is required.", "INVALID_PHONE")
	}
	if !govalidator.IsEmail(b.BusinessEmail) {
		result.add("businessEmail", "A valid email is required.", "INVALID_EMAIL")
	}

	return result.finish()
}

// ValidateFounder checks one founder/shareholder entry. The fieldPrefix
// qualifies error fields for list entries, e.g. "shareholders.2".
func ValidateFounder(f models.Founder, fieldPrefix string) *ValidationResult {
	result := &ValidationResult{}
	field := func(name string) string {
		if fieldPrefix == "" {
			return name
		}
		return fieldPrefix + "." + name
	}

	if len(strings.TrimSpace(f.FullName)) < 3 {
		result.add(field("fullName"), "Full name is required.", "MIN_LENGTH")
	}
	if len(strings.TrimSpace(f.NationalID)) < 5 {
		result.add(field("nationalId"), "A valid National ID number is required.", "MIN_LENGTH")
	}
	if !isPhone(f.Phone) {
		result.add(field("phone"), "A valid phone number is required.", "INVALID_PHONE")
	}
	if !govalidator.IsEmail(f.Email) {
		result.add(field("email"), "A valid email is required.", "INVALID_EMAIL")
	}
	if len(strings.TrimSpace(f.Role)) < 2 {
		result.add(field("role"), "Role is required.", "MIN_LENGTH")
	}
	if f.Shareholding < 0 || f.Shareholding > 100 {
		result.add(field("shareholding"), "Shareholding must be between 0 and 100.", "OUT_OF_RANGE")
	}
	if len(strings.TrimSpace(f.Nationality)) < 2 {
		result.add(field("nationality"), "Nationality is required.", "MIN_LENGTH")
	}
	if strings.TrimSpace(f.DateOfBirth) == "" {
		result.add(field("dateOfBirth"), "Date of birth is required.", "REQUIRED")
	}

	return result.finish()
}

// ValidateShareholders checks every entry of the shareholders step.
func ValidateShareholders(shareholders []models.Founder) *ValidationResult {
	result := &ValidationResult{}
	for i, s := range shareholders {
		entry := ValidateFounder(s, fmt.Sprintf("shareholders.%d", i))
		result.Errors = append(result.Errors, entry.Errors...)
	}
	return result.finish()
}

// ValidateDocuments checks that every required upload slot carries an identifier.
func ValidateDocuments(d models.DocumentUploads) *ValidationResult {
	result := &ValidationResult{}

	if d.NationalID == "" {
		result.add("nationalId", "National ID upload is required.", "REQUIRED")
	}
	if d.ProofOfAddress == "" {
		result.add("proofOfAddress", "Proof of Address is required.", "REQUIRED")
	}
	if d.AttestationOfNonConviction == "" {
		result.add("attestationOfNonConviction", "Attestation of Non-Conviction is required.", "REQUIRED")
	}
	if d.PhotoOrSelfie == "" {
		result.add("photoOrSelfie", "Photo/Selfie is required.", "REQUIRED")
	}

	return result.finish()
}

// ShareTotal sums the primary contact's stake with every shareholder's.
func ShareTotal(primary *models.Founder, shareholders []models.Founder) float64 {
	var total float64
	if primary != nil {
		total += primary.Shareholding
	}
	for _, s := range shareholders {
		total += s.Shareholding
	}
	return total
}

// CheckShareTotal enforces the 100% ownership invariant within ShareTolerance.
// The returned error reports the actual computed total.
func CheckShareTotal(primary *models.Founder, shareholders []models.Founder) error {
	total := ShareTotal(primary, shareholders)
	if math.Abs(total-100) > ShareTolerance {
		return errors.NewShareTotalInvalidError(total)
	}
	return nil
}

// isPhone accepts at least nine digits, ignoring separators and a leading plus.
func isPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == ' ' || r == '-':
			// separators are fine
		default:
			return false
		}
	}
	return digits >= 9
}
