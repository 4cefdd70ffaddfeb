// internal/validation/schema.go
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Step payload schemas enforced at the HTTP boundary before the typed rules
// run. Keeping them as Go maps matches how they are loaded.

var founderSchema = map[string]interface{}{
	"type": "object",
	"required": []string{
		"fullName", "nationalId", "phone", "email",
		"role", "shareholding", "nationality", "dateOfBirth",
	},
	"properties": map[string]interface{}{
		"fullName":     map[string]interface{}{"type": "string"},
		"nationalId":   map[string]interface{}{"type": "string"},
		"phone":        map[string]interface{}{"type": "string"},
		"email":        map[string]interface{}{"type": "string"},
		"role":         map[string]interface{}{"type": "string"},
		"shareholding": map[string]interface{}{"type": "number", "minimum": 0, "maximum": 100},
		"nationality":  map[string]interface{}{"type": "string"},
		"dateOfBirth":  map[string]interface{}{"type": "string"},
	},
	"additionalProperties": false,
}

// StepSchemas maps each wizard step path to the JSON schema of its payload.
var StepSchemas = map[string]map[string]interface{}{
	"business-info": {
		"type": "object",
		"required": []string{
			"businessName", "businessType", "activityCategory",
			"region", "city", "businessPhone", "businessEmail",
		},
		"properties": map[string]interface{}{
			"businessName":     map[string]interface{}{"type": "string"},
			"businessType":     map[string]interface{}{"type": "string", "enum": []string{"SARL", "SA", "GIE", "ETS"}},
			"rcNumber":         map[string]interface{}{"type": "string"},
			"activityCategory": map[string]interface{}{"type": "string"},
			"region":           map[string]interface{}{"type": "string"},
			"city":             map[string]interface{}{"type": "string"},
			"businessPhone":    map[string]interface{}{"type": "string"},
			"businessEmail":    map[string]interface{}{"type": "string"},
		},
		"additionalProperties": false,
	},
	"primary-contact": founderSchema,
	"shareholders": {
		"type":     "object",
		"required": []string{"shareholders"},
		"properties": map[string]interface{}{
			"shareholders": map[string]interface{}{
				"type":  "array",
				"items": founderSchema,
			},
		},
		"additionalProperties": false,
	},
	"documents": {
		"type": "object",
		"required": []string{
			"nationalId", "proofOfAddress", "attestationOfNonConviction", "photoOrSelfie",
		},
		"properties": map[string]interface{}{
			"nationalId":                 map[string]interface{}{"type": "string", "minLength": 1},
			"proofOfAddress":             map[string]interface{}{"type": "string", "minLength": 1},
			"attestationOfNonConviction": map[string]interface{}{"type": "string", "minLength": 1},
			"photoOrSelfie":              map[string]interface{}{"type": "string", "minLength": 1},
			"articlesOfAssociation":      map[string]interface{}{"type": "string"},
			"businessLicense":            map[string]interface{}{"type": "string"},
		},
		"additionalProperties": false,
	},
}

// ValidateStepPayload checks a raw step payload against that step's schema.
// Steps without a schema (summary) accept any payload.
func ValidateStepPayload(stepPath string, payload []byte) *ValidationResult {
	result := &ValidationResult{}

	schemaMap, ok := StepSchemas[stepPath]
	if !ok {
		return result.finish()
	}

	schemaLoader := gojsonschema.NewGoLoader(schemaMap)
	documentLoader := gojsonschema.NewBytesLoader(payload)

	res, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		result.add(stepPath, fmt.Sprintf("invalid payload: %v", err), "PARSE_ERROR")
		return result.finish()
	}

	for _, e := range res.Errors() {
		result.add(e.Field(), e.Description(), "SCHEMA_VIOLATION")
	}
	return result.finish()
}
